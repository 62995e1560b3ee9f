package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"disc-rental/pkg/response"
)

type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

// LoginRateLimit bounds login attempts per client IP to slow down
// credential stuffing. The bucket refills at the configured
// per-minute rate and allows a burst of the same size.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	perMin := m.authConfig.LoginRatePerMin
	if perMin <= 0 {
		perMin = 10
	}
	limiters := &ipLimiters{
		limiters: map[string]*rate.Limiter{},
		limit:    rate.Limit(float64(perMin) / 60.0),
		burst:    perMin,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(429, response.Resp{
				ErrorCode: 429,
				Message:   "too many login attempts, try again later",
			})
			return
		}
		c.Next()
	}
}
