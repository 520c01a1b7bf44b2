package auth

import (
	"strings"

	"vglist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// IdentifyMiddleware inspects the bearer token and records the caller if the
// token is valid. It never rejects a request; RequireIdentity does that.
func IdentifyMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if subject, err := jwt.ParseToken(secret, token); err == nil {
				setCaller(c, Caller{ID: subject})
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
