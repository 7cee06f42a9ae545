package handlers

import (
	"github.com/SscSPs/hesabdar/cmd/docs"
	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/middleware"
	"github.com/SscSPs/hesabdar/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
	loginLimit gin.HandlerFunc,
) {
	r.GET("/health", getHealth(db))

	RegisterAuthRoutes(r, services.Auth, loginLimit)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterProtectedAuthRoutes(v1, services.Auth)
	RegisterAccountRoutes(v1, services.Account)
	RegisterJournalRoutes(v1, services.Journal)
	RegisterReportingRoutes(v1, services.Reporting)
	RegisterVoiceRoutes(v1, services.Voice)
	RegisterReceiptRoutes(v1, services.Receipt, cfg.UploadDir, cfg.MaxUploadSize)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
