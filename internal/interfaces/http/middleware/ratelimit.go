package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/infrastructure/ratelimit"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// RateLimit enforces limiter per client IP under scope. Limiter errors let
// the request through.
func RateLimit(limiter ratelimit.RateLimiter, scope string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
