package middleware

import (
	"sync"
	"time"
)

// Limiter is a per-key token bucket. Each key gets perMin tokens, refilled
// continuously at perMin tokens per minute.
type Limiter struct {
	perMin float64

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens float64
	last   time.Time
}

func NewLimiter(perMin int) *Limiter {
	if perMin <= 0 {
		perMin = 60
	}
	return &Limiter{
		perMin:  float64(perMin),
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes one token for the key, reporting whether one was available.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.perMin, last: now}
		l.buckets[key] = b
	}
	elapsed := now.Sub(b.last).Minutes()
	b.tokens += elapsed * l.perMin
	if b.tokens > l.perMin {
		b.tokens = l.perMin
	}
	b.last = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
