package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an unused bucket is kept
const idleTTL = 30 * time.Minute

// RatePolicy allows MaxAttempts per Window, refilled continuously
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per namespace:key. Namespaces without a
// policy are not limited.
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy("save", 60, time.Minute)
//	if !rl.Allow("save", clientIP) { ... }
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	policies map[string]RatePolicy
	stop     chan struct{}
	once     sync.Once
	now      func() time.Time
}

// NewRateLimiter starts the background sweep of idle buckets; call Stop to end it
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		policies: make(map[string]RatePolicy),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	go rl.sweepLoop(time.Minute)
	return rl
}

// SetPolicy replaces the policy of a namespace and drops its existing buckets
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{MaxAttempts: maxAttempts, Window: window}
	prefix := namespace + ":"
	for k := range rl.buckets {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			delete(rl.buckets, k)
		}
	}
}

// Allow consumes one token for key and reports whether it was available
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, ok := rl.policies[namespace]
	if !ok {
		return true
	}
	if policy.MaxAttempts <= 0 || policy.Window <= 0 {
		return false
	}

	now := rl.now()
	id := namespace + ":" + key
	b, ok := rl.buckets[id]
	if !ok {
		every := policy.Window / time.Duration(policy.MaxAttempts)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), policy.MaxAttempts)}
		rl.buckets[id] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Reset forgets the bucket of key
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	delete(rl.buckets, namespace+":"+key)
	rl.mu.Unlock()
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-idleTTL)
	for k, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, k)
		}
	}
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}
