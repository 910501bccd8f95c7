package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hqdw/hq_warehouse_app/internal/core/services"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, browseService *services.BrowseService) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, browseService)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, browseService *services.BrowseService) {
	v1 := r.Group("/api/v1")

	registerCurrencyRoutes(v1, browseService)
	registerForexRoutes(v1, browseService)
	registerOfferRoutes(v1, browseService)
}
