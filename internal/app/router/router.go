package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vnquote/internal/feature/quotes/transport/handler"
	"vnquote/internal/platform/apikey"
	platformhandler "vnquote/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all routes. apiKey is the shared
// secret for the data routes; empty disables the gate.
func NewRouter(quotes *handler.QuoteHandler, apiKey string) *gin.Engine {
	r := gin.Default()

	// Browser clients call this from any origin and must be able to send
	// the shared-secret header.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders(apikey.Header)
	r.Use(cors.New(corsCfg))

	// No auth on the informational routes
	r.GET("/", platformhandler.Index)
	r.GET("/health", platformhandler.Health)

	// Data routes require the shared secret when one is configured
	api := r.Group("/api")
	api.Use(apikey.Required(apiKey))
	{
		api.GET("/stock/:symbol", quotes.GetQuote)
		api.POST("/stocks", quotes.GetQuotesBatch)
	}

	return r
}
