package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// FixedWindowLimiter 基于Redis的固定窗口计数限流,多实例共享配额
// Key: ratelimit:{client}:{窗口序号},窗口结束后自动过期
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewFixedWindowLimiter 每个window内同一客户端最多limit次请求
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if window <= 0 {
		window = time.Second
	}
	return &FixedWindowLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow 计数加一并判断是否超限
// INCR与EXPIRE放在同一个MULTI里,避免计数键永不过期
func (l *FixedWindowLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	slot := l.now().UnixNano() / int64(l.window)
	key := fmt.Sprintf("ratelimit:%s:%d", clientKey, slot)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "限流计数失败")
	}

	return incr.Val() <= l.limit, nil
}

// Backend 后端名称
func (l *FixedWindowLimiter) Backend() string {
	return "redis"
}
