package http

import (
	"context"

	"github.com/synerjet/bendesk/internal/interfaces/http/handlers"
	assetHandlers "github.com/synerjet/bendesk/internal/interfaces/http/handlers/asset"
	stockHandlers "github.com/synerjet/bendesk/internal/interfaces/http/handlers/stock"
	ticketHandlers "github.com/synerjet/bendesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler

	dashboardHandler *handlers.DashboardHandler
	avatarHandler    *handlers.AvatarHandler
	healthHandler    *handlers.HealthHandler

	ticketHandler *ticketHandlers.TicketHandler

	assetHandler     *assetHandlers.AssetHandler
	directoryHandler *assetHandlers.DirectoryHandler

	stockHandler *stockHandlers.StockHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	sqlDB, err := c.db.DB()
	var ping handlers.Pinger
	if err == nil {
		ping = sqlDB.PingContext
	} else {
		log.Warnw("failed to access database handle, health check reports it down", "error", err)
		ping = func(context.Context) error { return err }
	}

	c.hdlrs = &allHandlers{
		authHandler:      handlers.NewAuthHandler(c.userService, c.cfg.Auth.JWT, log),
		userHandler:      handlers.NewUserHandler(c.userService, log),
		dashboardHandler: handlers.NewDashboardHandler(ucs.getDashboardUC, log),
		avatarHandler:    handlers.NewAvatarHandler(c.avatars, log),
		healthHandler:    handlers.NewHealthHandler(ping, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC, ucs.updateTicketUC, ucs.addAttachmentUC, ucs.getTicketUC,
			ucs.listTicketsUC, ucs.listMyTicketsUC, ucs.downloadUC, log,
		),
		assetHandler: assetHandlers.NewAssetHandler(
			ucs.createAssetUC, ucs.updateAssetUC, ucs.deleteAssetUC, ucs.getAssetUC,
			ucs.listAssetsUC, ucs.exportAssetsUC, log,
		),
		directoryHandler: assetHandlers.NewDirectoryHandler(ucs.costCenterUC, ucs.assetTypeUC, ucs.deviceUserUC, log),
		stockHandler: stockHandlers.NewStockHandler(
			ucs.createItemUC, ucs.updateItemUC, ucs.deleteItemUC, ucs.movementUC, ucs.stockQueryUC, log,
		),
	}
}
