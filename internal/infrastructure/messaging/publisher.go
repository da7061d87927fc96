// Package messaging 领域事件发布
package messaging

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
)

// Publisher 底层消息发布,*mq.Publisher实现了它
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 经熔断器保护的事件发布者
// MQ持续不可用时熔断,结账不会因为等待发布而变慢
type EventPublisher struct {
	pub     Publisher
	breaker *circuitbreaker.CircuitBreaker
}

// NewEventPublisher 创建事件发布者
func NewEventPublisher(pub Publisher, breaker *circuitbreaker.CircuitBreaker) *EventPublisher {
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": breaker.Name()}, float64(breaker.State()))
	return &EventPublisher{pub: pub, breaker: breaker}
}

// PublishCheckoutCompleted 发布结账完成事件
func (p *EventPublisher) PublishCheckoutCompleted(ctx context.Context, evt *loan.CheckoutCompleted) error {
	err := p.breaker.ExecuteContext(ctx, func(ctx context.Context) error {
		return p.pub.Publish(ctx, loan.CheckoutCompletedKey, evt)
	})

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": p.breaker.Name(), "result": result})
	return err
}

// NopPublisher mq.enabled=false时使用
type NopPublisher struct{}

func (NopPublisher) PublishCheckoutCompleted(context.Context, *loan.CheckoutCompleted) error {
	return nil
}

// NewBreaker 按配置创建MQ熔断器,状态变化写日志和指标
func NewBreaker(cfg config.MQConfig) *circuitbreaker.CircuitBreaker {
	trips := cfg.BreakerTrips
	return circuitbreaker.New(circuitbreaker.Settings{
		Name:    "mq",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(c circuitbreaker.Counts) bool {
			return trips > 0 && c.ConsecutiveFailures >= trips
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			zap.L().Warn("熔断器状态变化",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		},
	})
}

// Provide 按配置返回事件发布者和清理函数
// MQ连不上时降级为NopPublisher,服务照常启动
func Provide(cfg *config.Config, logger *zap.Logger) (loan.EventPublisher, func()) {
	if !cfg.MQ.Enabled {
		return NopPublisher{}, func() {}
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, logger)
	if err != nil {
		logger.Warn("消息队列不可用,结账事件不会发布", zap.Error(err))
		return NopPublisher{}, func() {}
	}

	cleanup := func() {
		if err := pub.Close(); err != nil {
			logger.Warn("关闭消息发布者失败", zap.Error(err))
		}
	}
	return NewEventPublisher(pub, NewBreaker(cfg.MQ)), cleanup
}
