package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds per-client limits for expensive operations
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	Enabled           bool
	TrustProxy        bool
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	config  RateLimitConfig
	clients map[string]*rate.Limiter
	mu      sync.Mutex
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter. Idle clients are evicted by Cleanup.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:  config,
		clients: make(map[string]*rate.Limiter),
		now:     time.Now,
	}
}

// Allow reports whether the client may make another request now
func (rl *RateLimiter) Allow(ip string) bool {
	if !rl.config.Enabled {
		return true
	}
	return rl.getLimiter(ip).AllowN(rl.now(), 1)
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.clients[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.BurstSize)
		rl.clients[ip] = limiter
	}
	return limiter
}

// Cleanup drops clients whose bucket has refilled, returning how many were removed
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, limiter := range rl.clients {
		if limiter.TokensAt(rl.now()) >= float64(rl.config.BurstSize) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup evicts idle clients every interval until stop is closed
func (rl *RateLimiter) RunCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if n := rl.Cleanup(); n > 0 {
				log.Debug().Int("removed", n).Msg("Evicted idle rate limit clients")
			}
		}
	}
}

// Huma returns an operation middleware that rejects clients over their limit
func (rl *RateLimiter) Huma(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		ip := clientIP(ctx.RemoteAddr(), ctx.Header("X-Forwarded-For"), ctx.Header("X-Real-IP"), rl.config.TrustProxy)

		if !rl.Allow(ip) {
			log.Warn().
				Str("client_ip", ip).
				Str("path", ctx.URL().Path).
				Float64("requests_per_second", rl.config.RequestsPerSecond).
				Int("burst_size", rl.config.BurstSize).
				Msg("Rate limit exceeded")

			ctx.SetHeader("Retry-After", "1")
			huma.WriteErr(api, ctx, http.StatusTooManyRequests, "Too many plot requests. Please wait a moment.")
			return
		}

		next(ctx)
	}
}

func clientIP(remoteAddr, forwardedFor, realIP string, trustProxy bool) string {
	if trustProxy {
		if forwardedFor != "" {
			// X-Forwarded-For can be comma-separated; first entry is the client
			if i := strings.IndexByte(forwardedFor, ','); i != -1 {
				return strings.TrimSpace(forwardedFor[:i])
			}
			return forwardedFor
		}
		if realIP != "" {
			return realIP
		}
	}

	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
