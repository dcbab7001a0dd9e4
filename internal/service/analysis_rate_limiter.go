package service

import (
	"strings"
	"sync"
	"time"
)

// AnalysisRateLimiter limita cuantos analisis de patrones puede disparar una
// IP por ventana. Solo aplica al borde HTTP del endpoint de patrones.
type AnalysisRateLimiter interface {
	Allow(key string) bool
}

type memoryAnalysisRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	buckets   map[string]*rateBucket
	lastSweep time.Time
}

type rateBucket struct {
	count   int
	resetAt time.Time
}

// NewAnalysisRateLimiter crea el limitador en memoria (fallback sin Redis).
func NewAnalysisRateLimiter(window time.Duration, max int) AnalysisRateLimiter {
	if window <= 0 {
		window = time.Hour
	}
	if max <= 0 {
		max = 1
	}
	return &memoryAnalysisRateLimiter{
		window:    window,
		max:       max,
		buckets:   make(map[string]*rateBucket),
		lastSweep: time.Now().UTC(),
	}
}

func (l *memoryAnalysisRateLimiter) Allow(key string) bool {
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return false
	}

	now := time.Now().UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Barrido perezoso, a lo sumo una vez por ventana: sin esto el mapa
	// acumula una entrada por IP distinta durante toda la vida del proceso.
	if now.Sub(l.lastSweep) >= l.window {
		for key, bucket := range l.buckets {
			if now.After(bucket.resetAt) {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[normalizedKey]
	if !ok || now.After(b.resetAt) {
		l.buckets[normalizedKey] = &rateBucket{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	b.count++
	return b.count <= l.max
}
