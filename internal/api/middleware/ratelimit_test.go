package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2, Enabled: true})
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, rl.Allow("10.0.0.2"), "clients are limited independently")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "one token refills per second")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow("10.0.0.1"))
	}
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1, Enabled: true})
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	assert.Equal(t, 0, rl.Cleanup(), "bucket still draining")

	now = now.Add(5 * time.Second)
	assert.Equal(t, 1, rl.Cleanup())
	assert.Empty(t, rl.clients)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		forwarded  string
		realIP     string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remote: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "no port", remote: "192.168.1.1", want: "192.168.1.1"},
		{name: "untrusted forwarded", remote: "192.168.1.1:1", forwarded: "1.2.3.4", want: "192.168.1.1"},
		{name: "forwarded chain", remote: "192.168.1.1:1", forwarded: "1.2.3.4, 10.0.0.1", trustProxy: true, want: "1.2.3.4"},
		{name: "real ip", remote: "192.168.1.1:1", realIP: "5.6.7.8", trustProxy: true, want: "5.6.7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clientIP(tt.remote, tt.forwarded, tt.realIP, tt.trustProxy))
		})
	}
}
