package ratelimit

import (
	"net/http"

	"vglist/backend/internal/apperr"
	"vglist/backend/internal/auth"
	"vglist/backend/internal/logger"
	"vglist/backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Middleware rejects callers that exceeded their window with 429. Anonymous
// callers are keyed by client IP.
func Middleware(l Limiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if caller, ok := auth.CallerFrom(c); ok {
			key = caller.ID
		}

		allowed, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.Error("Rate limiter unavailable", err, zap.String("key", key))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Rate limiter unavailable",
				"code":  apperr.KindInternal,
			})
			return
		}
		if !allowed {
			metrics.RateLimitRejectionsTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
				"code":  apperr.KindTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
