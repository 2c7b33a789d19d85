// Package ratelimit provides per-client token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	updated    time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.refillRate)
	b.updated = now
}

// Info describes the bucket state after a request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and route.
type Limiter struct {
	cfg       *Config
	now       func() time.Time
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewLimiter creates a limiter. A nil config disables limiting.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Limiter{
		cfg:     cfg,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes a token for clientID on the given route.
func (l *Limiter) Allow(clientID, path, method string) Info {
	if !l.cfg.Enabled || l.cfg.Allowlist[clientID] {
		return Info{Allowed: true}
	}

	limit, window, burst := l.cfg.DefaultLimit, l.cfg.DefaultWindow, 0
	key := clientID + " " + method
	if rule := Match(path, method, l.cfg.Rules); rule != nil {
		limit, window, burst = rule.Limit, rule.Window, rule.Burst
		key += " " + rule.Path
	}
	if limit <= 0 || window <= 0 {
		return Info{Allowed: true}
	}
	if burst <= 0 {
		burst = limit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			updated:    now,
		}
		l.buckets[key] = b
	}
	b.refill(now)

	info := Info{Limit: limit}
	if b.tokens >= 1 {
		b.tokens--
		info.Allowed = true
	} else {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.refillRate * float64(time.Second))
	}
	info.Remaining = int(b.tokens)
	return info
}

// sweep evicts idle buckets at most once per IdleTTL. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	ttl := l.cfg.IdleTTL
	if ttl <= 0 || now.Sub(l.lastSweep) < ttl {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.updated) >= ttl {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// Len reports the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
