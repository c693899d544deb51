package router

import (
	"fmt"
	"time"

	"github.com/banarasikart/bsk-api/internal/cache"
	"github.com/banarasikart/bsk-api/internal/config"
	"github.com/banarasikart/bsk-api/internal/http/response"
	"github.com/banarasikart/bsk-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Counter with expiry set only on the first hit of the window.
var rateLimitScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// CheckoutRateLimit limits order submissions per client IP over a fixed
// window. Without redis the middleware passes everything through.
func CheckoutRateLimit(cfg *config.CheckoutRateLimitConfig) gin.HandlerFunc {
	window := 60
	maxRequests := 10
	if cfg != nil {
		if cfg.WindowSeconds > 0 {
			window = cfg.WindowSeconds
		}
		if cfg.MaxRequests > 0 {
			maxRequests = cfg.MaxRequests
		}
	}

	return func(c *gin.Context) {
		client := cache.Client()
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("bsk:ratelimit:checkout:%s", c.ClientIP())
		current, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, window).Int64()
		if err != nil {
			// The limiter never blocks checkouts when redis misbehaves.
			logger.Warnw("checkout_rate_limit_failed", "error", err)
			c.Next()
			return
		}
		if current > int64(maxRequests) {
			retryAfter := time.Duration(window) * time.Second
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			response.TooManyRequests(c, "too many checkout attempts")
			c.Abort()
			return
		}
		c.Next()
	}
}
