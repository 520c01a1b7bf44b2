package auth

import (
	"crypto/subtle"
	"net/http"

	"vglist/backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// RequireIdentity rejects anonymous requests.
// It must be used AFTER IdentifyMiddleware.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  apperr.KindUnauthorized,
			})
			return
		}
		c.Next()
	}
}

// CronSecretMiddleware guards scheduler-only endpoints with a shared secret
// sent as a bearer token. An empty secret locks the endpoint.
func CronSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid cron secret",
				"code":  apperr.KindUnauthorized,
			})
			return
		}
		c.Next()
	}
}
