package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"scheduling-assistant/pkg/response"
)

type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// ChatRateLimit throttles chat messages per session. It must run after Auth
// so the scope is available; unauthenticated requests never reach it.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.chatRate.allow(sc.SessionID) {
			m.l.Warnf(c.Request.Context(), "middleware.ChatRateLimit: session %s throttled", sc.SessionID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
