package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the single-process fallback used when Redis is not configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string]*attemptInfo
	now      func() time.Time
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewMemoryLimiter allows limit requests per key in each window. Expired
// entries are swept until ctx is done.
func NewMemoryLimiter(ctx context.Context, limit int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string]*attemptInfo),
		now:      time.Now,
	}
	go l.cleanup(ctx)
	return l
}

// Allow never fails; the error is there to satisfy Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	info, exists := l.attempts[key]
	if !exists || now.Sub(info.firstAt) >= l.window {
		l.attempts[key] = &attemptInfo{count: 1, firstAt: now}
		return true, nil
	}

	if info.count >= l.limit {
		return false, nil
	}
	info.count++
	return true, nil
}

func (l *MemoryLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *MemoryLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, info := range l.attempts {
		if now.Sub(info.firstAt) >= l.window {
			delete(l.attempts, key)
		}
	}
}
