package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careline/internal/infrastructure/ratelimit"
	sharedConfig "careline/internal/shared/config"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

// RateLimit bounds requests per caller per minute. A limiter failure lets the
// request through: availability over strictness when Redis is down.
func RateLimit(limiter ratelimit.RateLimiter, cfg sharedConfig.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		// Runs before authentication, so the client IP is the only
		// identity available to key on.
		key := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerMinute)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
