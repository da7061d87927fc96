// Package ratelimit 按客户端限流
//
// 两种后端:
//   - local: 进程内令牌桶(golang.org/x/time/rate),单实例部署
//   - redis: 固定窗口计数,多实例共享配额
package ratelimit

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

const (
	BackendLocal = "local"
	BackendRedis = "redis"
)

// Limiter 判断某个客户端本次请求是否放行
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
	Backend() string
}

// Provide 按配置创建限流器,未启用时返回nil
// redis后端连不上时退回local
func Provide(cfg *config.Config) (Limiter, func()) {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}

	if rl.Backend == BackendRedis {
		client, err := redis.NewClient(cfg)
		if err == nil {
			return redis.NewFixedWindowLimiter(client, rl.Burst, rl.Window), func() { _ = client.Close() }
		}
		zap.L().Warn("Redis不可用,限流退回本地令牌桶", zap.Error(err))
	}

	local := NewLocalLimiter(rl.RPS, rl.Burst)
	return local, local.Close
}
