package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginLimiter is optional.
	LoginLimiter   gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.LoginLimiter != nil {
			auth.POST("/login", cfg.LoginLimiter, cfg.AuthHandler.Login)
		} else {
			auth.POST("/login", cfg.AuthHandler.Login)
		}
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
	}
}
