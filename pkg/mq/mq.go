// Package mq RabbitMQ发布/消费封装
//
// 消息统一以JSON编码，Exchange为持久化的topic类型。
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/library/pkg/metrics"
)

// Publisher 消息发布者
type Publisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex // amqp.Channel 发布不保证并发安全
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(url, exchange, exchangeType string, logger *zap.Logger) (*Publisher, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	logger.Info("消息发布者已创建", zap.String("exchange", exchange), zap.String("type", exchangeType))
	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func open(url, exchange, exchangeType string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("声明Exchange失败: %w", err)
	}
	return conn, channel, nil
}

// Publish 发布JSON消息（持久化投递）
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	metrics.IncCounterVec(metrics.MessagesPublishedTotal, map[string]string{
		"exchange":    p.exchange,
		"routing_key": routingKey,
	})
	p.logger.Debug("消息已发布", zap.String("routing_key", routingKey), zap.Int("bytes", len(body)))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

func closeAll(channel *amqp.Channel, conn *amqp.Connection) error {
	if channel != nil {
		_ = channel.Close()
	}
	if conn != nil {
		return conn.Close()
	}
	return nil
}

// Delivery 交给处理函数的消息
type Delivery struct {
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// Handler 消息处理函数，返回错误时消息重新入队
type Handler func(ctx context.Context, d Delivery) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewConsumer 声明Queue并按routingKeys绑定到Exchange
// queue为空时创建服务端命名的临时队列（独占、断开即删除）
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, logger *zap.Logger) (*Consumer, error) {
	conn, channel, err := open(url, exchange, exchangeType)
	if err != nil {
		return nil, err
	}

	durable := queue != ""
	q, err := channel.QueueDeclare(
		queue,
		durable,  // Durable
		!durable, // AutoDelete
		!durable, // Exclusive
		false,    // NoWait
		nil,
	)
	if err != nil {
		closeAll(channel, conn)
		return nil, fmt.Errorf("声明Queue失败: %w", err)
	}

	for _, routingKey := range routingKeys {
		if err := channel.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			closeAll(channel, conn)
			return nil, fmt.Errorf("绑定Queue失败: %w", err)
		}
	}

	logger.Info("消息消费者已创建", zap.String("queue", q.Name), zap.Strings("routing_keys", routingKeys))
	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
		logger:  logger,
	}, nil
}

// Queue 实际队列名
func (c *Consumer) Queue() string {
	return c.queue
}

// Consume 阻塞消费直到ctx结束，手动确认
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // Consumer标签（自动生成）
		false, // AutoAck
		false, // Exclusive
		false, // NoLocal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("消费者退出", zap.String("queue", c.queue))
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("消息Channel已关闭")
			}
			d := Delivery{RoutingKey: msg.RoutingKey, Body: msg.Body, Timestamp: msg.Timestamp}
			if err := handler(ctx, d); err != nil {
				c.logger.Warn("消息处理失败，重新入队", zap.String("routing_key", msg.RoutingKey), zap.Error(err))
				metrics.IncCounterVec(metrics.MessagesConsumedTotal, map[string]string{"queue": c.queue, "result": "failure"})
				_ = msg.Nack(false, true)
				continue
			}
			metrics.IncCounterVec(metrics.MessagesConsumedTotal, map[string]string{"queue": c.queue, "result": "success"})
			_ = msg.Ack(false)
		}
	}
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}
