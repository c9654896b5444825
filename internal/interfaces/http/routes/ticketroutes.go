package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers/ticket"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *ticket.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Assignment rules are checked
// by the update use case, so every authenticated role reaches the handlers.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", cfg.TicketHandler.ListTickets)
		tickets.POST("", cfg.TicketHandler.CreateTicket)

		// must come before /:id
		tickets.GET("/mine", cfg.TicketHandler.ListMyTickets)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.POST("/:id", cfg.TicketHandler.UpdateTicket)
	}

	engine.GET("/uploads/:filename", cfg.AuthMiddleware.RequireAuth(), cfg.TicketHandler.DownloadAttachment)
}
