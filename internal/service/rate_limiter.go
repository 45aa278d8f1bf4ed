package service

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrRateLimited indica que la clave agoto su cupo en la ventana actual.
var ErrRateLimited = errors.New("rate limited")

// RateLimiter limita la frecuencia de solicitudes por clave (por ejemplo, IP del cliente).
type RateLimiter interface {
	Allow(key string) bool
}

// anonymousLimitKey agrupa las solicitudes sin IP de cliente en un solo cupo.
const anonymousLimitKey = "anonymous"

// limitKey normaliza la clave igual para todos los limitadores.
func limitKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return anonymousLimitKey
	}
	return k
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

// NewMemoryRateLimiter crea un rate limiter de ventana deslizante en memoria.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	key = limitKey(key)
	now := l.now()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
