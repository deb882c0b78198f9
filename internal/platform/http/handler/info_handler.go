// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

const (
	// ServiceName identifies this service in the info and health bodies.
	ServiceName = "vnquote-api"
	// ServiceVersion is the version string reported by the info and health routes.
	ServiceVersion = "1.0.0"
)

// Index handles GET / with a static service descriptor listing the endpoints.
func Index(c *gin.Context) {
	c.JSON(200, gin.H{
		"service": ServiceName,
		"version": ServiceVersion,
		"endpoints": gin.H{
			"health":       "GET /health",
			"single_stock": "GET /api/stock/:symbol",
			"batch_stocks": "POST /api/stocks (body: {symbols: []})",
		},
	})
}

// Health handles the /health liveness endpoint. It never depends on upstream
// availability and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": ServiceName,
			"version": ServiceVersion,
		})
	}
}
