package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/analyze-resume", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
			{Path: "/resume/", Method: "GET", Limit: 100, Window: time.Minute, Burst: 100},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/analyze-resume", "POST")

	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/analyze-resume", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("10.0.0.1", "/analyze-resume", "POST")

	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("10.0.0.1", "/analyze-resume", "POST")
	}

	allowed, _ := l.Allow("10.0.0.2", "/analyze-resume", "POST")

	assert.True(t, allowed)
}

func TestLimiter_WhitelistBypasses(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.9", "/analyze-resume", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_BlacklistAlwaysBlocks(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("10.6.6.6", "/health", "POST")

	assert.False(t, allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/analyze-resume", "POST")

	assert.True(t, allowed)
	assert.Zero(t, info.Limit)
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/health", "GET", testConfig().EndpointConfigs)

	require.NotNil(t, cfg)
	assert.Zero(t, cfg.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := testConfig().EndpointConfigs

	exact := MatchEndpoint("/analyze-resume", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 2, exact.Limit)

	prefix := MatchEndpoint("/resume/history", "GET", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 100, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/resume/history", "DELETE", configs))
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	tb := newTokenBucket(1, 100) // 100 tokens/second

	require.True(t, tb.allow())
	require.False(t, tb.allow())

	time.Sleep(20 * time.Millisecond)

	assert.True(t, tb.allow())
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}
