package usecases

import (
	"context"
	"strings"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type CreateItemCommand struct {
	Request dto.CreateItemRequest
	User    string
}

type CreateItemResult struct {
	Item     dto.ItemDTO      `json:"item"`
	Movement *dto.MovementDTO `json:"movimentacao,omitempty"`
}

// CreateItemUseCase registers a material and, when it arrives with a
// quantity, the matching entrada in the same transaction.
type CreateItemUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    db.Transactor
	thresholds   stock.Thresholds
	logger       logger.Interface
}

func NewCreateItemUseCase(
	itemRepo stock.ItemRepository,
	movementRepo stock.MovementRepository,
	txManager db.Transactor,
	thresholds stock.Thresholds,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		thresholds:   thresholds,
		logger:       logger,
	}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	req := cmd.Request
	category := req.Category
	if nc := strings.TrimSpace(req.NewCategory); nc != "" {
		category = nc
	}

	item, err := stock.NewItem(stock.ItemFields{
		Name:     req.Name,
		Category: category,
		Unit:     req.Unit,
		Quantity: req.Quantity,
	}, uc.thresholds)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var movement *stock.Movement
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.itemRepo.Create(txCtx, item); err != nil {
			return err
		}
		if item.Quantity() <= 0 {
			return nil
		}
		mv, err := stock.NewMovement(stock.MovementIn, item.ID(), item.Quantity(), stock.EntryDescription(req.Notes), cmd.User)
		if err != nil {
			return err
		}
		if err := uc.movementRepo.Create(txCtx, mv); err != nil {
			return err
		}
		movement = mv
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create stock item", "name", item.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create stock item")
	}

	uc.logger.Infow("stock item created", "item_id", item.ID(), "quantity", item.Quantity(), "user", cmd.User)
	result := &CreateItemResult{Item: dto.ToItemDTO(item)}
	if movement != nil {
		mv := dto.ToMovementDTO(movement)
		mv.ItemName = item.Name()
		result.Movement = &mv
	}
	return result, nil
}

type UpdateItemCommand struct {
	ID      uint
	Request dto.UpdateItemRequest
	User    string
}

// UpdateItemUseCase applies a manual edit. A quantity change is recorded as
// an entrada or saida so the ledger still explains the quantity on hand.
type UpdateItemUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    db.Transactor
	logger       logger.Interface
}

func NewUpdateItemUseCase(itemRepo stock.ItemRepository, movementRepo stock.MovementRepository, txManager db.Transactor, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{itemRepo: itemRepo, movementRepo: movementRepo, txManager: txManager, logger: logger}
}

// ManualAdjustmentDescription labels movements written by item edits.
const ManualAdjustmentDescription = "Ajuste manual de quantidade"

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*dto.ItemDTO, error) {
	item, err := loadItem(ctx, uc.itemRepo, cmd.ID, uc.logger)
	if err != nil {
		return nil, err
	}

	req := cmd.Request
	delta, err := item.Edit(stock.ItemFields{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.itemRepo.Update(txCtx, item); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		kind, qty := stock.MovementIn, delta
		if delta < 0 {
			kind, qty = stock.MovementOut, -delta
		}
		mv, err := stock.NewMovement(kind, item.ID(), qty, ManualAdjustmentDescription, cmd.User)
		if err != nil {
			return err
		}
		return uc.movementRepo.Create(txCtx, mv)
	})
	if err != nil {
		uc.logger.Errorw("failed to update stock item", "item_id", cmd.ID, "error", err)
		return nil, errors.NewInternalError("failed to update stock item")
	}

	uc.logger.Infow("stock item updated", "item_id", item.ID(), "delta", delta, "user", cmd.User)
	result := dto.ToItemDTO(item)
	return &result, nil
}

// DeleteItemUseCase removes an item together with its movements.
type DeleteItemUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    db.Transactor
	logger       logger.Interface
}

func NewDeleteItemUseCase(itemRepo stock.ItemRepository, movementRepo stock.MovementRepository, txManager db.Transactor, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{itemRepo: itemRepo, movementRepo: movementRepo, txManager: txManager, logger: logger}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := loadItem(ctx, uc.itemRepo, id, uc.logger); err != nil {
		return err
	}
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.movementRepo.DeleteByItem(txCtx, id); err != nil {
			return err
		}
		return uc.itemRepo.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete stock item", "item_id", id, "error", err)
		return errors.NewInternalError("failed to delete stock item")
	}
	uc.logger.Infow("stock item deleted", "item_id", id)
	return nil
}

func loadItem(ctx context.Context, repo stock.ItemRepository, id uint, log logger.Interface) (*stock.Item, error) {
	item, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get stock item", "item_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load stock item")
	}
	if item == nil {
		return nil, errors.NewNotFoundError("stock item not found")
	}
	return item, nil
}
