package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/base-identity/identity-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Identity read access (public)
		v1.GET("/identities/:address", handler.GetIdentity)

		// Analysis pipeline (public; cache-guarded against repeated oracle calls)
		v1.POST("/identities/:address/analyze", handler.AnalyzeIdentity)

		// Mint recording (requires API key authentication)
		v1.POST("/identities/:address/mint", middleware.APIKeyAuth(authCfg), handler.MintIdentity)
	}
}
