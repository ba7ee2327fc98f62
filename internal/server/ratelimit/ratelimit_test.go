package ratelimit

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestLimiter_IsLimited(t *testing.T) {
	limiter := NewLimiter(time.Second, 3)

	// First three requests fit in the window
	for i := 0; i < 3; i++ {
		if limiter.IsLimited("x") {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// Fourth request exceeds the allowance
	if !limiter.IsLimited("x") {
		t.Error("Expected 4th request to be limited")
	}
}

func TestLimiter_WindowReset(t *testing.T) {
	now := time.Now()
	limiter := NewLimiter(time.Second, 3)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 4; i++ {
		limiter.IsLimited("x")
	}
	if !limiter.IsLimited("x") {
		t.Error("Expected request to be limited before window elapsed")
	}

	// Advance past the window; the counter starts fresh
	now = now.Add(1100 * time.Millisecond)
	if limiter.IsLimited("x") {
		t.Error("Expected request to be allowed after window reset")
	}
}

func TestLimiter_IndependentKeys(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)

	if limiter.IsLimited("a") {
		t.Error("Expected first request for a to be allowed")
	}
	if !limiter.IsLimited("a") {
		t.Error("Expected second request for a to be limited")
	}
	if limiter.IsLimited("b") {
		t.Error("Expected first request for b to be allowed")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(time.Minute, 100)

	var wg sync.WaitGroup
	limitedCount := 0
	var mu sync.Mutex

	// 200 concurrent requests for the same key; exactly 100 fit
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.IsLimited("127.0.0.1") {
				mu.Lock()
				limitedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if limitedCount != 100 {
		t.Errorf("Expected 100 limited requests, got %d", limitedCount)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"Cf-Connecting-Ip": "1.2.3.4", "X-Forwarded-For": "5.6.7.8"},
			remoteAddr: "9.9.9.9:1234",
			want:       "1.2.3.4",
		},
		{
			name:       "forwarded-for first entry",
			headers:    map[string]string{"X-Forwarded-For": "5.6.7.8, 10.0.0.1"},
			remoteAddr: "9.9.9.9:1234",
			want:       "5.6.7.8",
		},
		{
			name:       "real-ip fallback",
			headers:    map[string]string{"X-Real-Ip": "5.6.7.8"},
			remoteAddr: "9.9.9.9:1234",
			want:       "5.6.7.8",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "9.9.9.9:1234",
			want:       "9.9.9.9",
		},
		{
			name: "unknown when nothing usable",
			want: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/enhance", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
