package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/infrastructure/config"
	"github.com/synerjet/bendesk/internal/infrastructure/metrics"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/interfaces/http/routes"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"

	_ "github.com/synerjet/bendesk/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, m *metrics.Metrics, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, db, cfg, m, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if r.cfg.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(r.metrics))
		r.engine.GET(r.cfg.Metrics.Path, gin.WrapH(r.metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   middleware.RateLimit(r.loginLimiter, "login", r.log),
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:      r.hdlrs.userHandler,
		DashboardHandler: r.hdlrs.dashboardHandler,
		AvatarHandler:    r.hdlrs.avatarHandler,
		AuthMiddleware:   r.authMiddleware,
		Checker:          r.checker,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAssetRoutes(r.engine, &routes.AssetRouteConfig{
		AssetHandler:     r.hdlrs.assetHandler,
		DirectoryHandler: r.hdlrs.directoryHandler,
		AuthMiddleware:   r.authMiddleware,
		Checker:          r.checker,
	})

	routes.SetupStockRoutes(r.engine, &routes.StockRouteConfig{
		StockHandler:   r.hdlrs.stockHandler,
		AuthMiddleware: r.authMiddleware,
		Checker:        r.checker,
	})

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("route not found"))
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases the resources held by the router
func (r *Router) Shutdown() {
	r.Close()
	r.log.Infow("router resources released")
}
