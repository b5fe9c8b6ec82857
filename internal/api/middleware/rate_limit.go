package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-chat/internal/pkg/common"
)

// rateLimiter is a process-wide token bucket. Completion calls are the
// expensive resource being protected, so one bucket covers all clients.
type rateLimiter struct {
	mu       sync.Mutex
	tokens   int
	capacity int
	rate     float64
	lastTime time.Time
}

func newRateLimiter(requests int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		tokens:   requests,
		capacity: requests,
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

func (rl *rateLimiter) allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastTime).Seconds()

	refill := int(elapsed * rl.rate)
	if refill > 0 {
		rl.lastTime = now
		if rl.tokens+refill > rl.capacity {
			rl.tokens = rl.capacity
		} else {
			rl.tokens += refill
		}
	}

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}
	return false
}

// RateLimit caps requests per window on the routes it guards.
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := newRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.allow() {
			common.LogWarn("rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Zbyt wiele zapytan. Sprobuj ponownie za chwile.",
			})
			return
		}

		c.Next()
	}
}
