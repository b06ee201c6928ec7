package redis

import (
	"testing"

	"github.com/wonny/themeleader/pkg/config"
)

func TestNewClient_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Enabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	limiter := NewRateLimiter(client, "test")

	// When Redis is disabled, all requests should be allowed
	allowed, remaining, err := limiter.Allow(nil, KRXRateLimit)
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if !allowed {
		t.Error("Expected request to be allowed when Redis disabled")
	}
	if remaining != KRXRateLimit.Limit {
		t.Errorf("Expected remaining = %d, got %d", KRXRateLimit.Limit, remaining)
	}
}

func TestCache_Disabled(t *testing.T) {
	cfg := &config.Config{
		Redis: config.RedisConfig{
			Enabled: false,
		},
	}

	client, _ := New(cfg)
	cache := NewCache(client, "test")

	// When Redis is disabled, cache operations should be no-ops
	var result string
	found, err := cache.Get(nil, "key", &result)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Expected cache miss when Redis disabled")
	}

	if err := cache.Set(nil, "key", "value", TTLSnapshot); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
}

func TestCacheKeys(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{
			name:     "ListingKey",
			fn:       ListingKey,
			expected: "krx:listing",
		},
		{
			name:     "SnapshotKey",
			fn:       func() string { return SnapshotKey("20260828") },
			expected: "krx:snapshot:20260828",
		},
		{
			name:     "MarketCapKey",
			fn:       func() string { return MarketCapKey("20260828") },
			expected: "krx:marcap:20260828",
		},
		{
			name:     "NewsKey",
			fn:       func() string { return NewsKey("삼성전자 특징주", 20) },
			expected: "naver:news:삼성전자 특징주:20",
		},
		{
			name:     "HistoryKey",
			fn:       func() string { return HistoryKey("005930", "20260501", "20260828") },
			expected: "naver:history:005930:20260501:20260828",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}
