// Package apikey implements the shared-secret authorization gate.
package apikey

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Header is the request header carrying the shared secret.
const Header = "X-API-Key"

// Required returns a Gin middleware that compares the request's X-API-Key
// header against the configured key. An empty key disables the gate entirely.
func Required(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader(Header) != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
