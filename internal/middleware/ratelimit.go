package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	IdleTTL         time.Duration
	CleanupInterval time.Duration
}

// PerMinute allows n requests per minute per client with a burst of n.
func PerMinute(n int) RateLimiterConfig {
	if n <= 0 {
		n = 10
	}
	return RateLimiterConfig{
		Rate:            rate.Limit(float64(n) / 60.0),
		Burst:           n,
		IdleTTL:         10 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP, as resolved by RealIP
// or the socket peer. Idle buckets are swept
// in the background until Stop is called.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	if config.CleanupInterval > 0 {
		go rl.cleanupLoop()
	}
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Limit wraps a single route and answers 429 once a client has used up its
// bucket. scope only labels the log line; routes wrapped by the same limiter
// share one bucket per client.
func (rl *RateLimiter) Limit(scope string, next drift.HandlerFunc) drift.HandlerFunc {
	return func(c *drift.Context) {
		ip := ClientIP(c)
		if !rl.allow(ip) {
			c.Response.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.config.Rate)))
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("scope", scope),
			)
			abortWithError(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(c)
	}
}

func (rl *RateLimiter) LimiterCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.config.Rate, rl.config.Burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()
	rl.mu.Unlock()

	return cl.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > rl.config.IdleTTL {
			delete(rl.limiters, key)
		}
	}
}

func retryAfterSeconds(limit rate.Limit) int {
	if limit <= 0 {
		return 60
	}
	return int(math.Ceil(1 / float64(limit)))
}
