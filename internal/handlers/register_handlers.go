package handlers

import (
	"github.com/bukukita/bkk_backend/internal/core/services"
	"github.com/bukukita/bkk_backend/internal/middleware"
	"github.com/bukukita/bkk_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, container *services.Container) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, container.Auth)

	// Everything under /api/v1 requires a bearer token
	setupAPIV1Routes(r, cfg, container)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, container *services.Container) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerBusinessRoutes(v1, container.Business)

	// Business-scoped resources
	business := v1.Group("/businesses/:businessID")
	registerAccountRoutes(business, container.Account)
	RegisterTransactionRoutes(business, container.Transaction, container.Account)
	registerReportingRoutes(business, container.Reporting)
}
