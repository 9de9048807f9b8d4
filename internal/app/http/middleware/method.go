package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MethodNotAllowed is the NoMethod handler.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
}

// Preflight answers any OPTIONS request with 200. CORS answers first
// when an Origin is present; this covers the rest, including paths with
// no OPTIONS route.
func Preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
