package http

import (
	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/infrastructure/config"
	"github.com/synerjet/bendesk/internal/infrastructure/repository"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	ticketRepo     ticket.TicketRepository
	historyRepo    ticket.HistoryRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	assetRepo      asset.Repository
	assetTypeRepo  asset.AssetTypeRepository
	costCenterRepo asset.CostCenterRepository
	deviceUserRepo asset.DeviceUserRepository
	stockItemRepo  stock.ItemRepository
	movementRepo   stock.MovementRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, cfg *config.Config, log logger.Interface) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db, log),
		ticketRepo:     repository.NewTicketRepository(db),
		historyRepo:    repository.NewTicketHistoryRepository(db),
		commentRepo:    repository.NewTicketCommentRepository(db),
		attachmentRepo: repository.NewTicketAttachmentRepository(db),
		assetRepo:      repository.NewAssetRepository(db),
		assetTypeRepo:  repository.NewAssetTypeRepository(db),
		costCenterRepo: repository.NewCostCenterRepository(db),
		deviceUserRepo: repository.NewDeviceUserRepository(db),
		stockItemRepo:  repository.NewStockItemRepository(db, cfg.StockThresholds()),
		movementRepo:   repository.NewStockMovementRepository(db),
	}
}
