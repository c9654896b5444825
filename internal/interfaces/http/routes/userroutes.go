package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user management and the other
// authenticated endpoints that are not tied to one module.
type UserRouteConfig struct {
	UserHandler      *handlers.UserHandler
	DashboardHandler *handlers.DashboardHandler
	AvatarHandler    *handlers.AvatarHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Checker          authorization.Checker
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin(cfg.Checker))
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.UserHandler.UpdateUser)
		users.POST("/:id/toggle", cfg.UserHandler.ToggleUserStatus)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
	}

	engine.GET("/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.DashboardHandler.GetDashboard)
	engine.GET("/avatar/:email", cfg.AuthMiddleware.RequireAuth(), cfg.AvatarHandler.GetAvatar)
}
