package controller

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepEvery is how many Allow calls pass between sweeps of idle limiters.
const sweepEvery = 1024

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter holds one token bucket per key, typically a user ID. Buckets
// idle for longer than the configured TTL are dropped.
type KeyedLimiter struct {
	mu    sync.Mutex
	m     map[string]*limiterEntry
	r     rate.Limit
	b     int
	ttl   time.Duration
	calls int
	now   func() time.Time
}

// NewKeyedLimiter allows perMinute events per key with the given burst. A
// non-positive perMinute disables limiting.
func NewKeyedLimiter(perMinute float64, burst int, ttl time.Duration) *KeyedLimiter {
	r := rate.Inf
	if perMinute > 0 {
		r = rate.Limit(perMinute / 60)
	}
	if burst < 1 {
		burst = 1
	}

	return &KeyedLimiter{
		m:   make(map[string]*limiterEntry),
		r:   r,
		b:   burst,
		ttl: ttl,
		now: time.Now,
	}
}

// Allow reports whether key may perform one more event now.
func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	now := kl.now()

	kl.calls++
	if kl.calls%sweepEvery == 0 {
		kl.sweep(now)
	}

	e, ok := kl.m[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(kl.r, kl.b)}
		kl.m[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (kl *KeyedLimiter) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	return len(kl.m)
}

func (kl *KeyedLimiter) sweep(now time.Time) {
	if kl.ttl <= 0 {
		return
	}
	for k, e := range kl.m {
		if now.Sub(e.lastSeen) > kl.ttl {
			delete(kl.m, k)
		}
	}
}
