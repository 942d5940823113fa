package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// RequestIDMiddleware honours an incoming X-Request-ID header, generating a
// fresh UUID when absent, and echoes it back on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	id, exists := c.Get(requestIDKey)
	if !exists {
		return ""
	}
	return id.(string)
}
