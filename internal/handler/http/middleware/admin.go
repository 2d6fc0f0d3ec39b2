package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/domain/contract"
	"github.com/skn143/lifelessons/internal/domain/entity"
)

// AdminOnly allows the request through only when the verified email
// belongs to a user whose role is admin. It must run after
// AuthMiddleWare so a verified email is present on the context.
func AdminOnly(userRepo contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ContextEmailKey)
		email, _ := v.(string)
		if !exists || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		user, err := userRepo.GetByEmail(c.Request.Context(), email)
		if err != nil || user.Role != entity.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Next()
	}
}
