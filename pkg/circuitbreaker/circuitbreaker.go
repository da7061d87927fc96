// Package circuitbreaker 熔断器
//
// 用于保护对外部依赖（消息队列、Redis）的调用：连续失败达到阈值后熔断，
// 在Timeout内直接拒绝请求；超时后进入半开状态放行少量探测请求，
// 探测成功恢复，失败重新熔断。
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开或半开探测名额已满
var ErrOpenState = errors.New("circuit breaker is open")

// Settings 熔断器参数，零值字段使用默认值
type Settings struct {
	Name          string
	MaxRequests   uint32                   // 半开状态允许的探测请求数，默认1
	Interval      time.Duration            // 关闭状态下统计窗口，0表示不重置
	Timeout       time.Duration            // 打开状态持续时间，默认30s
	ReadyToTrip   func(counts Counts) bool // 默认连续失败5次
	IsSuccessful  func(err error) bool     // 默认err==nil；context取消不计失败
	OnStateChange func(name string, from, to State)
}

// Counts 当前窗口内的统计
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

func (c *Counts) success() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) failure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 并发安全的熔断器
type CircuitBreaker struct {
	settings Settings

	mu         sync.Mutex
	state      State
	generation uint64
	counts     Counts
	expiry     time.Time
}

// New 创建熔断器
func New(s Settings) *CircuitBreaker {
	if s.MaxRequests == 0 {
		s.MaxRequests = 1
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.ReadyToTrip == nil {
		s.ReadyToTrip = func(c Counts) bool { return c.ConsecutiveFailures >= 5 }
	}
	if s.IsSuccessful == nil {
		s.IsSuccessful = defaultIsSuccessful
	}

	cb := &CircuitBreaker{settings: s}
	cb.toNewGeneration(time.Now())
	return cb
}

func defaultIsSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.settings.Name
}

// Execute 在熔断器保护下执行fn
func (cb *CircuitBreaker) Execute(fn func() error) error {
	return cb.ExecuteContext(context.Background(), func(context.Context) error { return fn() })
}

// ExecuteContext 同Execute，ctx已结束时不发起调用
func (cb *CircuitBreaker) ExecuteContext(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	generation, err := cb.beforeRequest()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			cb.afterRequest(generation, false)
			panic(r)
		}
	}()

	err = fn(ctx)
	cb.afterRequest(generation, cb.settings.IsSuccessful(err))
	return err
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(time.Now())
	return state
}

// Counts 当前统计快照
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.counts
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(time.Now())
	switch {
	case state == StateOpen:
		return generation, ErrOpenState
	case state == StateHalfOpen && cb.counts.Requests >= cb.settings.MaxRequests:
		return generation, ErrOpenState
	}

	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, generation := cb.currentState(now)
	// 状态已切换，旧窗口的结果作废
	if generation != before {
		return
	}

	if success {
		cb.counts.success()
		if state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.settings.MaxRequests {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.failure()
	switch state {
	case StateClosed:
		if cb.settings.ReadyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.toNewGeneration(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.toNewGeneration(now)

	if cb.settings.OnStateChange != nil {
		cb.settings.OnStateChange(cb.settings.Name, prev, state)
	}
}

func (cb *CircuitBreaker) toNewGeneration(now time.Time) {
	cb.generation++
	cb.counts = Counts{}

	switch cb.state {
	case StateClosed:
		if cb.settings.Interval > 0 {
			cb.expiry = now.Add(cb.settings.Interval)
		} else {
			cb.expiry = time.Time{}
		}
	case StateOpen:
		cb.expiry = now.Add(cb.settings.Timeout)
	default:
		cb.expiry = time.Time{}
	}
}
