package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers/asset"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/authorization"
)

// AssetRouteConfig holds dependencies for the asset inventory routes.
type AssetRouteConfig struct {
	AssetHandler     *asset.AssetHandler
	DirectoryHandler *asset.DirectoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Checker          authorization.Checker
}

// SetupAssetRoutes configures asset routes. Reads are open to every
// authenticated user.
func SetupAssetRoutes(engine *gin.Engine, cfg *AssetRouteConfig) {
	write := authorization.RequirePermission(cfg.Checker, authorization.PermWriteAssets)
	remove := authorization.RequirePermission(cfg.Checker, authorization.PermDeleteAssets)

	assets := engine.Group("/ativos")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.GET("", cfg.AssetHandler.ListAssets)
		assets.POST("", write, cfg.AssetHandler.CreateAsset)
		assets.GET("/export", cfg.AssetHandler.ExportAssets)

		costCenters := assets.Group("/centros-de-custo")
		costCenters.GET("", cfg.DirectoryHandler.ListCostCenters)
		costCenters.POST("", write, cfg.DirectoryHandler.CreateCostCenter)
		costCenters.PUT("/:id", write, cfg.DirectoryHandler.UpdateCostCenter)
		costCenters.DELETE("/:id", write, cfg.DirectoryHandler.DeleteCostCenter)

		types := assets.Group("/tipos-dispositivo")
		types.GET("", cfg.DirectoryHandler.ListAssetTypes)
		types.POST("", write, cfg.DirectoryHandler.CreateAssetType)
		types.PUT("/:id", write, cfg.DirectoryHandler.RenameAssetType)
		types.DELETE("/:id", write, cfg.DirectoryHandler.DeleteAssetType)

		deviceUsers := assets.Group("/usuarios-dispositivo")
		deviceUsers.GET("", cfg.DirectoryHandler.ListDeviceUsers)
		deviceUsers.POST("", write, cfg.DirectoryHandler.CreateDeviceUser)
		deviceUsers.PUT("/:id", write, cfg.DirectoryHandler.UpdateDeviceUser)
		deviceUsers.DELETE("/:id", write, cfg.DirectoryHandler.DeleteDeviceUser)

		assets.GET("/:id", cfg.AssetHandler.GetAsset)
		assets.PUT("/:id", write, cfg.AssetHandler.UpdateAsset)
		assets.DELETE("/:id", remove, cfg.AssetHandler.DeleteAsset)
	}
}
