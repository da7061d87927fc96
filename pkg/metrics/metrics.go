// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三组：
//   - HTTP层：请求数、耗时、并发数，由middleware.Metrics记录
//   - 借阅业务：结账次数/失败原因、借出册数、购物车操作
//   - 基础设施：熔断器状态、事件发布
//
// 所有指标通过promauto注册到默认Registry，/metrics端点直接暴露。
// 未调用InitMetrics时辅助函数不做任何事。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP指标
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 借阅指标
	CheckoutsTotal       *prometheus.CounterVec
	CheckoutDuration     prometheus.Histogram
	BooksCheckedOutTotal prometheus.Counter
	CartOperationsTotal  *prometheus.CounterVec
	RateLimitedTotal     *prometheus.CounterVec

	// 熔断器与消息
	CircuitBreakerState    *prometheus.GaugeVec
	CircuitBreakerRequests *prometheus.CounterVec
	MessagesPublishedTotal *prometheus.CounterVec
	MessagesConsumedTotal  *prometheus.CounterVec
)

// InitMetrics 注册全部指标，重复调用无副作用
func InitMetrics() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_checkouts_total",
			Help: "结账次数",
		},
		[]string{"result"}, // success | not_found | empty_cart | unavailable | error
	)

	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "library_checkout_duration_seconds",
			Help:    "结账事务耗时（秒）",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	BooksCheckedOutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_books_checked_out_total",
			Help: "借出图书册数",
		},
	)

	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_cart_operations_total",
			Help: "购物车操作次数",
		},
		[]string{"operation", "result"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "被限流拒绝的请求数",
		},
		[]string{"backend"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"}, // success | failure | rejected
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)

	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		},
		[]string{"queue", "result"},
	)
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// AddCounter 增加Counter
func AddCounter(counter prometheus.Counter, delta float64) {
	if counter == nil {
		return
	}
	counter.Add(delta)
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGaugeVec 设置带标签的Gauge
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
