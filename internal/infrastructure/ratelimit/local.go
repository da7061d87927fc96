package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepInterval = time.Minute
	idleTTL       = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter 每个客户端一个令牌桶,闲置超过idleTTL的桶定期清理
type LocalLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	now      func() time.Time

	stop chan struct{}
	once sync.Once
}

// NewLocalLimiter rps为每秒补充的令牌数,burst为桶容量
func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &LocalLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

// Allow 消耗一个令牌,桶空时返回false
func (l *LocalLimiter) Allow(_ context.Context, clientKey string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[clientKey]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[clientKey] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// Backend 后端名称
func (l *LocalLimiter) Backend() string {
	return BackendLocal
}

// Close 停止清理协程
func (l *LocalLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *LocalLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *LocalLimiter) sweep() {
	cutoff := l.now().Add(-idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}

func (l *LocalLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
