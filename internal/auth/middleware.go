package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key under which RequireAuth stores the
// verified claims.
const ClaimsKey = "claims"

// Verifier validates a bearer token and returns its claims.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// RequireAuth guards a route behind a valid bearer token. The 401
// body is deliberately uniform for every failure mode.
func RequireAuth(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			unauthorized(c)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   true,
		"message": "unauthorized access",
	})
}
