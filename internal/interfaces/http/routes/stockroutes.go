package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers/stock"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

// StockRouteConfig holds dependencies for the stock routes.
type StockRouteConfig struct {
	StockHandler   *stock.StockHandler
	AuthMiddleware *middleware.AuthMiddleware
	Checker        authorization.Checker
}

// SetupStockRoutes configures stock routes.
func SetupStockRoutes(engine *gin.Engine, cfg *StockRouteConfig) {
	write := authorization.RequirePermission(cfg.Checker, authorization.PermWriteStock)

	st := engine.Group("/estoque")
	st.Use(cfg.AuthMiddleware.RequireAuth())
	{
		st.GET("", cfg.StockHandler.Overview)
		st.GET("/lista", cfg.StockHandler.ListItems)
		st.GET("/historico", cfg.StockHandler.History)

		st.POST("", write, cfg.StockHandler.CreateItem)
		st.POST("/saida", write, cfg.StockHandler.RegisterExit)
		st.PUT("/:id", write, cfg.StockHandler.UpdateItem)
		st.DELETE("/:id", authorization.RequirePermission(cfg.Checker, authorization.PermDeleteStock), cfg.StockHandler.DeleteItem)
		st.POST("/:id/entrada", write, cfg.StockHandler.RegisterEntry)
	}
}
