package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
)

func newEventsCmd(c *cli) *cobra.Command {
	var queue string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "消费结账完成事件并打印,Ctrl+C退出",
		RunE: func(cmd *cobra.Command, _ []string) error {
			metrics.InitMetrics()
			mqCfg := c.cfg.MQ
			consumer, err := mq.NewConsumer(mqCfg.URL, mqCfg.Exchange, mqCfg.ExchangeType, queue,
				[]string{loan.CheckoutCompletedKey}, c.logger)
			if err != nil {
				return err
			}
			defer consumer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c.logger.Info("等待结账事件", zap.String("queue", consumer.Queue()))
			return consumer.Consume(ctx, checkoutEventHandler(c.logger))
		},
	}
	cmd.Flags().StringVar(&queue, "queue", "", "持久队列名,为空时使用临时队列")
	return cmd
}

// checkoutEventHandler 打印结账事件
// 无法解析的消息直接丢弃,避免反复重新入队
func checkoutEventHandler(logger *zap.Logger) mq.Handler {
	return func(_ context.Context, d mq.Delivery) error {
		var evt loan.CheckoutCompleted
		if err := json.Unmarshal(d.Body, &evt); err != nil {
			logger.Warn("丢弃无法解析的消息", zap.String("routing_key", d.RoutingKey), zap.Error(err))
			return nil
		}

		logger.Info("结账完成",
			zap.Uint("cart_id", evt.CartID),
			zap.Uint("user_id", evt.UserID),
			zap.String("user_name", evt.UserName),
			zap.Uints("book_ids", evt.BookIDs),
			zap.Time("borrowed_at", evt.BorrowedAt),
		)
		return nil
	}
}
