package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Memory is a token bucket per key that refills requests tokens every window.
// Buckets idle for longer than the window are dropped.
type Memory struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

// NewMemory expects requests >= 1 and a positive window.
func NewMemory(requests int, window time.Duration) *Memory {
	return &Memory{
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		ttl:     window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, b := range m.buckets {
		if k != key && now.Sub(b.lastSeen) > m.ttl {
			delete(m.buckets, k)
		}
	}

	b := m.buckets[key]
	if b == nil {
		b = &bucket{lim: rate.NewLimiter(m.limit, m.burst)}
		m.buckets[key] = b
	}
	b.lastSeen = now

	if b.lim.AllowN(now, 1) {
		return true, 0, nil
	}

	return false, time.Duration(float64(time.Second) / float64(m.limit)), nil
}

func (m *Memory) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.buckets)
}
