package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// 指标注册在全局Registry上，测试只断言增量

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	if HTTPRequestsTotal == nil || HTTPRequestDuration == nil || HTTPRequestsInProgress == nil {
		t.Fatal("HTTP指标未初始化")
	}
	if CheckoutsTotal == nil || CheckoutDuration == nil || BooksCheckedOutTotal == nil {
		t.Fatal("借阅指标未初始化")
	}
	t.Log("✅ 所有指标初始化成功")
}

func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksCheckedOutTotal)
	IncCounter(BooksCheckedOutTotal)
	AddCounter(BooksCheckedOutTotal, 2)

	if got := getCounterValue(t, BooksCheckedOutTotal) - before; got != 3 {
		t.Errorf("Counter增量错误: expected=3, got=%f", got)
	}
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	ok := map[string]string{"result": "success"}
	empty := map[string]string{"result": "empty_cart"}
	beforeOK := getCounterVecValue(t, CheckoutsTotal, ok)
	beforeEmpty := getCounterVecValue(t, CheckoutsTotal, empty)

	IncCounterVec(CheckoutsTotal, ok)
	IncCounterVec(CheckoutsTotal, ok)
	IncCounterVec(CheckoutsTotal, empty)

	if got := getCounterVecValue(t, CheckoutsTotal, ok) - beforeOK; got != 2 {
		t.Errorf("success增量错误: expected=2, got=%f", got)
	}
	if got := getCounterVecValue(t, CheckoutsTotal, empty) - beforeEmpty; got != 1 {
		t.Errorf("empty_cart增量错误: expected=1, got=%f", got)
	}
}

func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	if got := getGaugeValue(t, HTTPRequestsInProgress) - before; got != 1 {
		t.Errorf("Gauge增量错误: expected=1, got=%f", got)
	}
	DecGauge(HTTPRequestsInProgress)
}

func TestGaugeVec(t *testing.T) {
	InitMetrics()

	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "checkout-events"}, 1)
	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "rate-limit"}, 0)

	if v := getGaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "checkout-events"}); v != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", v)
	}
	if v := getGaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "rate-limit"}); v != 0 {
		t.Errorf("GaugeVec值错误: expected=0, got=%f", v)
	}
}

func TestHistogram(t *testing.T) {
	InitMetrics()

	beforeCount := getHistogramCount(t, CheckoutDuration)
	beforeSum := getHistogramSum(t, CheckoutDuration)

	ObserveHistogram(CheckoutDuration, 0.01)
	ObserveHistogram(CheckoutDuration, 0.25)

	if got := getHistogramCount(t, CheckoutDuration) - beforeCount; got != 2 {
		t.Errorf("Histogram观测次数错误: expected=2, got=%d", got)
	}
	if got := getHistogramSum(t, CheckoutDuration) - beforeSum; got < 0.259 || got > 0.261 {
		t.Errorf("Histogram总和错误: expected=0.26, got=%f", got)
	}
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "POST", "path": "/checkout"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.02)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.03)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/view_cart"}, 0.01)

	if got := getHistogramVecCount(t, HTTPRequestDuration, labels) - before; got != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", got)
	}
}

// 辅助函数：获取Counter值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数：获取GaugeVec值
func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	var metric dto.Metric
	if err := gaugeVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取GaugeVec值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数：获取Histogram观测次数
func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}

// 辅助函数：获取Histogram总和
func getHistogramSum(t *testing.T, histogram prometheus.Histogram) float64 {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleSum()
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
