package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

func TestLocalLimiter_Burst(t *testing.T) {
	l := NewLocalLimiter(1, 3)
	defer l.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "第%d次请求应放行", i+1)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "桶空后拒绝")

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "不同客户端独立计数")

	now = now.Add(time.Second)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "一秒后补充一个令牌")
}

func TestLocalLimiter_Sweep(t *testing.T) {
	l := NewLocalLimiter(1, 1)
	defer l.Close()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(2 * time.Minute)
	_, _ = l.Allow(context.Background(), "b")

	now = now.Add(2 * time.Minute)
	l.sweep()
	assert.Equal(t, 1, l.size(), "只清理闲置超过3分钟的客户端")
}

func TestLocalLimiter_CloseTwice(t *testing.T) {
	l := NewLocalLimiter(1, 1)
	l.Close()
	assert.NotPanics(t, l.Close)
}

func TestProvide(t *testing.T) {
	t.Run("未启用", func(t *testing.T) {
		limiter, cleanup := Provide(&config.Config{})
		defer cleanup()
		assert.Nil(t, limiter)
	})

	t.Run("本地令牌桶", func(t *testing.T) {
		cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, Backend: BackendLocal, RPS: 5, Burst: 5}}
		limiter, cleanup := Provide(cfg)
		defer cleanup()
		assert.IsType(t, &LocalLimiter{}, limiter)
		assert.Equal(t, BackendLocal, limiter.Backend())
	})

	t.Run("Redis不可用时退回本地", func(t *testing.T) {
		cfg := &config.Config{
			Redis:     config.RedisConfig{Host: "127.0.0.1", Port: 1, DialTimeout: 100 * time.Millisecond},
			RateLimit: config.RateLimitConfig{Enabled: true, Backend: BackendRedis, RPS: 5, Burst: 5, Window: time.Second},
		}
		limiter, cleanup := Provide(cfg)
		defer cleanup()
		assert.IsType(t, &LocalLimiter{}, limiter)
		assert.Equal(t, BackendLocal, limiter.Backend())
	})
}
