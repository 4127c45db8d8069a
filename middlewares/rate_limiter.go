package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu  sync.Mutex
	ips map[string]*rate.Limiter
}

// NewRateLimiter allows perSecond sustained requests per IP with the given
// burst headroom.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit: rate.Limit(perSecond),
		burst: burst,
		ips:   make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.ips[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.ips[ip] = limiter
	}
	return limiter
}

// RateLimit rejects requests over the per-IP budget with 429.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
