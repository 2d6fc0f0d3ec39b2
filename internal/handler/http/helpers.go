package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skn143/lifelessons/internal/handler/http/dto"
	"github.com/skn143/lifelessons/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// VerifiedEmail pulls the verified email the auth gate attached to the
// request context. The second return is false when the gate did not run.
func VerifiedEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
