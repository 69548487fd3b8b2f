package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/gtd_bi/internal/ratelimit"
	"github.com/GTDGit/gtd_bi/internal/utils"
)

// RateLimitMiddleware bounds report requests per client IP. When the limiter
// itself fails the request is let through.
func RateLimitMiddleware(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Str("ip", ip).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !ok {
			utils.Error(c, http.StatusTooManyRequests, utils.ErrRateLimited.Error(), "Too many report requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
