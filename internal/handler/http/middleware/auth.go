package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
)

// ContextEmailKey is where the auth gate stores the verified email.
const ContextEmailKey = "decodedEmail"

// AuthMiddleWare verifies the Bearer token with the identity provider
// and attaches the verified email to the request context. It fails
// closed: no token or a bad token rejects the request before any
// handler logic runs.
func AuthMiddleWare(verifier contract.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
