package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.True(t, info.ResetTime.After(time.Now()))
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/score", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/analyses", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/score", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// batch scoring allows a burst of 2
	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/score/batch", "POST")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/score/batch", "POST")
	assert.False(t, allowed)

	// single scoring has its own bucket
	allowed, info := limiter.Allow("127.0.0.1", "/score", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	// history reads have their own limit
	allowed, info = limiter.Allow("127.0.0.1", "/analyses", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 120, info.Limit)

	// unconfigured endpoints use the default limit
	allowed, info = limiter.Allow("127.0.0.1", "/score", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_PatternRoutesShareBucket(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyses/{id}", Method: "GET", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("127.0.0.1", "/analyses/a", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/analyses/b", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/analyses/c", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 1, limiter.size())
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/analyses", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/analyses", "GET")
	assert.False(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.2", "/analyses", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/analyses", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/analyses", "GET")
		require.True(t, allowed)
	}
	require.Equal(t, 10, limiter.size())

	limiter.cleanupBuckets(time.Now())
	assert.Equal(t, 10, limiter.size())

	limiter.cleanupBuckets(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, limiter.size())
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/score/batch", Method: "POST", Limit: 10, Window: time.Minute},
		{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute},
		{Path: "/analyses/{id}", Method: "GET", Limit: 240, Window: time.Minute},
		{Path: "/static/", Method: "GET", Limit: 100, Window: time.Minute},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{name: "exact", path: "/score/batch", method: "POST", wantLimit: 10},
		{name: "exact shorter path", path: "/score", method: "POST", wantLimit: 60},
		{name: "pattern", path: "/analyses/0f8c", method: "GET", wantLimit: 240},
		{name: "pattern needs a segment", path: "/analyses/", method: "GET", wantNil: true},
		{name: "pattern segment count", path: "/analyses/a/b", method: "GET", wantNil: true},
		{name: "prefix", path: "/static/app.js", method: "GET", wantLimit: 100},
		{name: "method mismatch", path: "/score", method: "GET", wantNil: true},
		{name: "health unlimited", path: "/health", method: "GET", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("/analyses/{id}", "/analyses/123"))
	assert.True(t, matchPattern("/a/{x}/b", "/a/1/b/"))
	assert.False(t, matchPattern("/a/{x}/b", "/a/1/c"))
	assert.False(t, matchPattern("/analyses/{id}", "/analyses"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.Len(t, cfg.EndpointConfigs, 4)
}

func TestLoadConfig_EndpointOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_SCORE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_BATCH_LIMIT", "not-a-number")

	cfg := LoadConfig()

	score := MatchEndpoint("/score", "POST", cfg.EndpointConfigs)
	require.NotNil(t, score)
	assert.Equal(t, 5, score.Limit)
	assert.Equal(t, 5, score.Burst)

	batch := MatchEndpoint("/score/batch", "POST", cfg.EndpointConfigs)
	require.NotNil(t, batch)
	assert.Equal(t, 10, batch.Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
