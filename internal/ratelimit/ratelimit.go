package ratelimit

import (
	"fmt"
	"sync"
	"time"

	gerr "github.com/jekabolt/sales-panel/internal/errors"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	done     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		done:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetIn returns how long until the window of key starts over.
func (l *Limiter) ResetIn(key string) time.Duration {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists {
		return 0
	}
	if d := time.Until(c.expiresAt); d > 0 {
		return d
	}
	return 0
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.done) })
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Kind names a class of requests limited separately.
type Kind string

const (
	KindRead    Kind = "ip_read"
	KindWrite   Kind = "ip_write"
	KindWebhook Kind = "ip_webhook"
)

// Config sets the per-IP request budget of each kind within Window.
type Config struct {
	Window     time.Duration `mapstructure:"window"`
	ReadMax    int           `mapstructure:"read_max"`
	WriteMax   int           `mapstructure:"write_max"`
	WebhookMax int           `mapstructure:"webhook_max"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Window:     time.Minute,
		ReadMax:    120,
		WriteMax:   30,
		WebhookMax: 600,
	}
}

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[Kind]*Limiter
	mu       sync.RWMutex
}

// NewMultiKeyLimiter creates a limiter per kind. Zero fields fall back to DefaultConfig.
func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	d := DefaultConfig()
	if c == nil {
		c = &d
	}
	window := c.Window
	if window <= 0 {
		window = d.Window
	}
	pick := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	return &MultiKeyLimiter{
		limiters: map[Kind]*Limiter{
			KindRead:    NewLimiter(window, pick(c.ReadMax, d.ReadMax)),
			KindWrite:   NewLimiter(window, pick(c.WriteMax, d.WriteMax)),
			KindWebhook: NewLimiter(window, pick(c.WebhookMax, d.WebhookMax)),
		},
	}
}

// Check verifies that a request of the given kind is allowed from ip.
// The returned error wraps gerr.TooManyRequests.
func (m *MultiKeyLimiter) Check(kind Kind, ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.limiters[kind]
	if !ok {
		return nil
	}
	if !l.Allow(ip) {
		return fmt.Errorf("%w: retry in %s", gerr.TooManyRequests, l.ResetIn(ip).Round(time.Second))
	}
	return nil
}

// Remaining returns the remaining budget of ip for the given kind.
func (m *MultiKeyLimiter) Remaining(kind Kind, ip string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	l, ok := m.limiters[kind]
	if !ok {
		return -1
	}
	return l.GetRemaining(ip)
}

// Close stops every limiter.
func (m *MultiKeyLimiter) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.limiters {
		l.Close()
	}
}
