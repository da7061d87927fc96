package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 需要本地Redis,通过LIBRARY_TEST_REDIS_ADDR指定,连不上则跳过
func testClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("LIBRARY_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr, DialTimeout: 200 * time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis不可用(%s): %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	client := testClient(t)
	ctx := context.Background()

	l := NewFixedWindowLimiter(client, 2, time.Minute)
	fixed := time.Now()
	l.now = func() time.Time { return fixed }

	clientKey := fmt.Sprintf("test-%d", fixed.UnixNano())
	t.Cleanup(func() {
		slot := fixed.UnixNano() / int64(time.Minute)
		client.Del(ctx, fmt.Sprintf("ratelimit:%s:%d", clientKey, slot))
	})

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, clientKey)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, clientKey)
	require.NoError(t, err)
	assert.False(t, ok, "窗口内第3次请求被拒绝")

	slot := fixed.UnixNano() / int64(time.Minute)
	ttl, err := client.TTL(ctx, fmt.Sprintf("ratelimit:%s:%d", clientKey, slot)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0), "计数键带过期时间")
}

func TestFixedWindowLimiter_RedisDown(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	l := NewFixedWindowLimiter(client, 1, time.Second)
	ok, err := l.Allow(context.Background(), "x")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "限流计数失败")
}
