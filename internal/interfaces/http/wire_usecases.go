package http

import (
	assetUsecases "github.com/synerjet/bendesk/internal/application/asset/usecases"
	stockUsecases "github.com/synerjet/bendesk/internal/application/stock/usecases"
	ticketUsecases "github.com/synerjet/bendesk/internal/application/ticket/usecases"
	"github.com/synerjet/bendesk/internal/infrastructure/export"
	shareddb "github.com/synerjet/bendesk/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket
	createTicketUC  *ticketUsecases.CreateTicketUseCase
	updateTicketUC  *ticketUsecases.UpdateTicketUseCase
	addAttachmentUC *ticketUsecases.AddAttachmentUseCase
	getTicketUC     *ticketUsecases.GetTicketUseCase
	listTicketsUC   *ticketUsecases.ListTicketsUseCase
	listMyTicketsUC *ticketUsecases.ListMyTicketsUseCase
	getDashboardUC  *ticketUsecases.GetDashboardUseCase
	downloadUC      *ticketUsecases.DownloadAttachmentUseCase

	// Asset
	createAssetUC  *assetUsecases.CreateAssetUseCase
	updateAssetUC  *assetUsecases.UpdateAssetUseCase
	deleteAssetUC  *assetUsecases.DeleteAssetUseCase
	getAssetUC     *assetUsecases.GetAssetUseCase
	listAssetsUC   *assetUsecases.ListAssetsUseCase
	exportAssetsUC *assetUsecases.ExportAssetsUseCase
	costCenterUC   *assetUsecases.CostCenterUseCase
	assetTypeUC    *assetUsecases.AssetTypeUseCase
	deviceUserUC   *assetUsecases.DeviceUserUseCase

	// Stock
	createItemUC *stockUsecases.CreateItemUseCase
	updateItemUC *stockUsecases.UpdateItemUseCase
	deleteItemUC *stockUsecases.DeleteItemUseCase
	movementUC   *stockUsecases.MovementUseCase
	stockQueryUC *stockUsecases.StockQueryUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos
	txMgr := shareddb.NewTransactionManager(c.db)
	slaThresholds := c.cfg.TicketThresholds()
	stockThresholds := c.cfg.StockThresholds()

	ucs := &allUseCases{}
	c.ucs = ucs

	ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(
		repos.ticketRepo, repos.attachmentRepo, c.files, c.notifier, txMgr, slaThresholds, log,
	)
	ucs.updateTicketUC = ticketUsecases.NewUpdateTicketUseCase(
		repos.ticketRepo, repos.historyRepo, repos.commentRepo, repos.userRepo,
		c.notifier, txMgr, c.checker, slaThresholds, log,
	)
	ucs.addAttachmentUC = ticketUsecases.NewAddAttachmentUseCase(repos.ticketRepo, repos.attachmentRepo, c.files, log)
	ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(
		repos.ticketRepo, repos.historyRepo, repos.commentRepo, repos.attachmentRepo,
		repos.userRepo, slaThresholds, log,
	)
	ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, slaThresholds, log)
	ucs.listMyTicketsUC = ticketUsecases.NewListMyTicketsUseCase(repos.ticketRepo, slaThresholds, log)
	ucs.getDashboardUC = ticketUsecases.NewGetDashboardUseCase(repos.ticketRepo, log)
	ucs.downloadUC = ticketUsecases.NewDownloadAttachmentUseCase(c.files, log)

	ucs.createAssetUC = assetUsecases.NewCreateAssetUseCase(repos.assetRepo, repos.assetTypeRepo, log)
	ucs.updateAssetUC = assetUsecases.NewUpdateAssetUseCase(repos.assetRepo, repos.assetTypeRepo, log)
	ucs.deleteAssetUC = assetUsecases.NewDeleteAssetUseCase(repos.assetRepo, log)
	ucs.getAssetUC = assetUsecases.NewGetAssetUseCase(repos.assetRepo, repos.costCenterRepo, repos.deviceUserRepo, log)
	ucs.listAssetsUC = assetUsecases.NewListAssetsUseCase(repos.assetRepo, repos.costCenterRepo, repos.deviceUserRepo, log)
	ucs.exportAssetsUC = assetUsecases.NewExportAssetsUseCase(ucs.listAssetsUC, export.NewXLSXExporter(), log)
	ucs.costCenterUC = assetUsecases.NewCostCenterUseCase(repos.costCenterRepo, log)
	ucs.assetTypeUC = assetUsecases.NewAssetTypeUseCase(repos.assetTypeRepo, repos.assetRepo, txMgr, log)
	ucs.deviceUserUC = assetUsecases.NewDeviceUserUseCase(repos.deviceUserRepo, log)

	ucs.createItemUC = stockUsecases.NewCreateItemUseCase(repos.stockItemRepo, repos.movementRepo, txMgr, stockThresholds, log)
	ucs.updateItemUC = stockUsecases.NewUpdateItemUseCase(repos.stockItemRepo, repos.movementRepo, txMgr, log)
	ucs.deleteItemUC = stockUsecases.NewDeleteItemUseCase(repos.stockItemRepo, repos.movementRepo, txMgr, log)
	ucs.movementUC = stockUsecases.NewMovementUseCase(repos.stockItemRepo, repos.movementRepo, txMgr, log)
	ucs.stockQueryUC = stockUsecases.NewStockQueryUseCase(repos.stockItemRepo, repos.movementRepo, log)
}
