package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("request over the limit should be blocked")
	}
}

func TestRateLimiterTracksKeysIndependently(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Error("first key should be blocked after its limit")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second key should not share the first key's count")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("second request in the window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.allow("10.0.0.1") {
		t.Error("request after the window expires should be allowed")
	}
}

func TestRateLimiterReset(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	rl.allow("10.0.0.1")
	if rl.allow("10.0.0.1") {
		t.Fatal("expected key to be at its limit")
	}

	rl.Reset()
	if !rl.allow("10.0.0.1") {
		t.Error("request after reset should be allowed")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")

	time.Sleep(20 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected expired entries to be removed, %d remain", remaining)
	}
}
