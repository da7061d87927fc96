package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := NewProvider(nil, sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestStartSpan(t *testing.T) {
	recorder := withRecorder(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "test", "Root")
		_, child := StartSpan(ctx, "test", "Child")

		assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
		assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())
		assert.Equal(t, root.SpanContext().TraceID().String(), ExtractTraceID(ctx))

		child.End()
		root.End()
	})

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "Child", ended[0].Name())
	assert.Equal(t, "Root", ended[1].Name())
}

func TestEndSpanRecordsError(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartSpan(context.Background(), "test", "Failing")
	EndSpan(span, errors.New("boom"))

	_, ok := StartSpan(context.Background(), "test", "Ok")
	EndSpan(ok, nil)

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
	assert.Equal(t, codes.Unset, ended[1].Status().Code)
}

func TestExtractTraceIDWithoutSpan(t *testing.T) {
	assert.Equal(t, "", ExtractTraceID(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}
