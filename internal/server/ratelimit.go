package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/desertthunder/playhead/internal/shared"
	"golang.org/x/time/rate"
)

// RateLimiter enforces a per-client request quota at the HTTP boundary.
//
// Each client (see clientKey) gets its own token bucket; exhaustion yields
// 429 before any handler logic runs.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a RateLimiter from a quota string like "60/m",
// "200/h", or "10/s" (count per unit).
func NewRateLimiter(quota string) (*RateLimiter, error) {
	limit, burst, err := parseQuota(quota)
	if err != nil {
		return nil, err
	}

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}, nil
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

// Middleware returns the boundary [Middleware] enforcing this quota.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientKey(r)) {
				writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: shared.ErrRateLimited.Error()})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Wrap applies this quota to a single handler, for routes with a stricter
// limit than the global one.
func (rl *RateLimiter) Wrap(handler http.Handler) http.Handler {
	return rl.Middleware()(handler)
}

// parseQuota parses "count/unit" into a refill rate and burst size.
func parseQuota(quota string) (rate.Limit, int, error) {
	parts := strings.SplitN(strings.TrimSpace(quota), "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: quota %q, want count/unit", shared.ErrInvalidConfig, quota)
	}

	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || count <= 0 {
		return 0, 0, fmt.Errorf("%w: quota count %q", shared.ErrInvalidConfig, parts[0])
	}

	var window time.Duration
	switch strings.TrimSpace(parts[1]) {
	case "s", "sec", "second":
		window = time.Second
	case "m", "min", "minute":
		window = time.Minute
	case "h", "hour":
		window = time.Hour
	case "d", "day":
		window = 24 * time.Hour
	default:
		return 0, 0, fmt.Errorf("%w: quota unit %q", shared.ErrInvalidConfig, parts[1])
	}

	return rate.Limit(float64(count) / window.Seconds()), count, nil
}
