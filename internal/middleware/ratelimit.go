package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is an in-memory sliding-window request budget keyed by client.
type RateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	hits        map[string][]time.Time
}

// NewRateLimiter creates a RateLimiter allowing maxRequests per window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		hits:        make(map[string][]time.Time),
	}
}

// Allow reports whether the client may make another request, recording the
// request when allowed.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	recent := rl.hits[clientID][:0]
	for _, t := range rl.hits[clientID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.maxRequests {
		rl.hits[clientID] = recent
		return false
	}

	rl.hits[clientID] = append(recent, now)
	return true
}

// RateLimit returns middleware enforcing the limiter per client IP.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(rl.window.Seconds()))
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   gin.H{"code": "RATE_LIMITED", "message": "rate limit exceeded; please try again later"},
			})
			return
		}
		c.Next()
	}
}
