package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLimiter struct {
	allow   bool
	err     error
	backend string
	keys    []string
}

func (s *stubLimiter) Backend() string {
	return s.backend
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	t.Run("生成新ID", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("沿用上游ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "upstream-1")
		w := serve(r, req)
		assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrCodeInternal, body.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/bad", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRateLimit(t *testing.T) {
	metrics.InitMetrics()

	t.Run("超限返回429", func(t *testing.T) {
		before := counterValue(t, "local")
		limiter := &stubLimiter{allow: false, backend: "local"}
		r := gin.New()
		r.Use(RateLimit(limiter))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.Equal(t, 1.0, counterValue(t, "local")-before)
		assert.Equal(t, []string{"192.0.2.1"}, limiter.keys, "按客户端IP计数")
	})

	t.Run("放行", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimit(&stubLimiter{allow: true, backend: "local"}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	})

	t.Run("后端出错时放行", func(t *testing.T) {
		r := gin.New()
		r.Use(RateLimit(&stubLimiter{err: errors.New("redis down"), backend: "redis"}))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	})
}

func TestMetrics(t *testing.T) {
	metrics.InitMetrics()
	r := gin.New()
	r.Use(Metrics())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	labels := map[string]string{"method": http.MethodGet, "path": "/books/:id", "status": "200"}
	before := vecValue(t, labels)
	serve(r, httptest.NewRequest(http.MethodGet, "/books/7", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/books/8", nil))

	assert.Equal(t, 2.0, vecValue(t, labels)-before, "按路由模板聚合")
}

func counterValue(t *testing.T, backend string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, metrics.RateLimitedTotal.With(map[string]string{"backend": backend}).Write(m))
	return m.GetCounter().GetValue()
}

func vecValue(t *testing.T, labels map[string]string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, metrics.HTTPRequestsTotal.With(labels).Write(m))
	return m.GetCounter().GetValue()
}
