// Package ratelimit throttles API clients with per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket. Tokens refill continuously at refillPerSec up
// to capacity; each admitted request consumes one.
type bucket struct {
	mu           sync.Mutex
	tokens       float64
	capacity     float64
	refillPerSec float64
	refilledAt   time.Time
	lastSeen     time.Time
}

func newBucket(capacity int, refillPerSec float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:       float64(capacity),
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		refilledAt:   now,
		lastSeen:     now,
	}
}

// take refills the bucket, consumes a token when one is available, and
// reports the post-take state, all in one critical section.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.refilledAt).Seconds() * b.refillPerSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		secondsUntilFull := (b.capacity - b.tokens) / b.refillPerSec
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info reports the throttle state applied to a request, for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one bucket per client, endpoint and method.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	config   *Config
	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter. A nil config falls back to a permissive
// default of 1000 requests per minute per client and endpoint.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.sweep(config.CleanupInterval)
	}
	return l
}

// Allow reports whether the client may call the endpoint, consuming quota
// when it may. Whitelisted clients and unlimited endpoints pass with a
// zero Limit so no headers are emitted for them.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := l.config.resolveEndpoint(endpoint, method)
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := method + " " + endpoint + " " + clientID
	allowed, remaining, reset := l.bucketFor(key, ec).take()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retry := time.Until(reset); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key string, ec EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())
	l.buckets[key] = b
	return b
}

// sweep drops buckets idle for over an hour so one-off clients do not
// accumulate.
func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop terminates the sweep goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
