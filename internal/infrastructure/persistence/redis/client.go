package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// NewClient 创建Redis客户端
// 连接池与超时取自配置,创建后立即PING一次
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout(cfg))
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "Redis连接失败")
	}

	zap.L().Info("Redis连接成功", zap.String("addr", cfg.Redis.Addr()))
	return client, nil
}

func pingTimeout(cfg *config.Config) time.Duration {
	if cfg.Redis.DialTimeout > 0 {
		return 2 * cfg.Redis.DialTimeout
	}
	return 5 * time.Second
}
