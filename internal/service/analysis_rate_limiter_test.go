package service

import (
	"testing"
	"time"
)

func TestMemoryAnalysisRateLimiter_AllowsUpToMax(t *testing.T) {
	limiter := NewAnalysisRateLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("expected request over max to be denied")
	}
}

func TestMemoryAnalysisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewAnalysisRateLimiter(time.Hour, 1)

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatalf("expected second ip to have its own bucket")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first ip to be exhausted")
	}
}

func TestMemoryAnalysisRateLimiter_RejectsEmptyKey(t *testing.T) {
	limiter := NewAnalysisRateLimiter(time.Hour, 5)

	if limiter.Allow("   ") {
		t.Fatalf("expected blank key to be rejected")
	}
}

func TestMemoryAnalysisRateLimiter_SweepsStaleBuckets(t *testing.T) {
	limiter := NewAnalysisRateLimiter(time.Millisecond, 5).(*memoryAnalysisRateLimiter)

	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.2")
	limiter.Allow("10.0.0.3")

	time.Sleep(5 * time.Millisecond)
	limiter.Allow("10.0.0.4")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if len(limiter.buckets) != 1 {
		t.Fatalf("expected stale buckets to be swept, got %d entries", len(limiter.buckets))
	}
	if _, ok := limiter.buckets["10.0.0.4"]; !ok {
		t.Fatalf("expected the live bucket to survive the sweep")
	}
}

func TestMemoryAnalysisRateLimiter_WindowResets(t *testing.T) {
	limiter := NewAnalysisRateLimiter(time.Nanosecond, 1)

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first request to be allowed")
	}
	time.Sleep(2 * time.Millisecond)
	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected a fresh window after reset")
	}
}
