package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response so log lines and
// client reports can be correlated.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a request id when the client did not send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set(RequestIDHeader, id)
		c.Next()
	}
}
