package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unreachable")

func tripAfter(n uint32) func(Counts) bool {
	return func(c Counts) bool { return c.ConsecutiveFailures >= n }
}

func fail() error { return errBroker }
func ok() error { return nil }

func TestClosedStateCountsSuccesses(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(3)})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(ok))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestOpensAfterConsecutiveFailures(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(3), Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errBroker)
	}
	require.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "熔断器打开时不应调用实际函数")
}

func TestSuccessResetsConsecutiveFailures(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(3)})

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	_ = cb.Execute(ok)
	_ = cb.Execute(fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestHalfOpenRecovery(t *testing.T) {
	var changes []string
	cb := New(Settings{
		Name:        "checkout-events",
		ReadyToTrip: tripAfter(2),
		Timeout:     50 * time.Millisecond,
		OnStateChange: func(name string, from, to State) {
			changes = append(changes, from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(80 * time.Millisecond)
	require.NoError(t, cb.Execute(ok))

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, changes)
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(2), Timeout: 50 * time.Millisecond})

	_ = cb.Execute(fail)
	_ = cb.Execute(fail)
	time.Sleep(80 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(fail), errBroker)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCanceledContextIsNotAFailure(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(1)})

	err := cb.ExecuteContext(context.Background(), func(context.Context) error {
		return context.Canceled
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = cb.ExecuteContext(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPanicCountsAsFailure(t *testing.T) {
	cb := New(Settings{Name: "test", ReadyToTrip: tripAfter(1)})

	assert.Panics(t, func() {
		_ = cb.Execute(func() error { panic("boom") })
	})
	assert.Equal(t, StateOpen, cb.State())
}
