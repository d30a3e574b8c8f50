package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CustomLoggerMiddleware creates a custom logging middleware that logs HTTP requests in simple text format
func CustomLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		// Admin ID is only present behind the auth middleware
		adminID := uint(0)
		if id, exists := c.Get("adminID"); exists {
			if v, ok := id.(uint); ok {
				adminID = v
			}
		}

		fmt.Printf("[API] %s | %s | %d | %s | %s | Admin: %d\n",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency.String(),
			c.ClientIP(),
			adminID,
		)
	}
}
