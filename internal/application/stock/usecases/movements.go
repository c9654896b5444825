package usecases

import (
	"context"
	stderrors "errors"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type EntryCommand struct {
	ItemID   uint
	Quantity float64
	Notes    string
	User     string
}

type ExitCommand struct {
	ItemID      uint
	Quantity    float64
	Responsible string
	Notes       string
	User        string
}

type MovementResult struct {
	Item     dto.ItemDTO     `json:"item"`
	Movement dto.MovementDTO `json:"movimentacao"`
}

// MovementUseCase writes entradas and saidas. Each call changes the
// quantity and appends one ledger row in a single transaction.
type MovementUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	txManager    db.Transactor
	logger       logger.Interface
}

func NewMovementUseCase(itemRepo stock.ItemRepository, movementRepo stock.MovementRepository, txManager db.Transactor, logger logger.Interface) *MovementUseCase {
	return &MovementUseCase{itemRepo: itemRepo, movementRepo: movementRepo, txManager: txManager, logger: logger}
}

func (uc *MovementUseCase) RegisterEntry(ctx context.Context, cmd EntryCommand) (*MovementResult, error) {
	if cmd.Quantity <= 0 {
		return nil, errors.NewValidationError("quantity must be greater than zero")
	}

	result, err := uc.apply(ctx, cmd.ItemID, stock.MovementIn, cmd.Quantity, stock.EntryDescription(cmd.Notes), cmd.User,
		func(item *stock.Item) error {
			if err := item.Receive(cmd.Quantity); err != nil {
				return errors.NewValidationError(err.Error())
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("stock entry registered", "item_id", cmd.ItemID, "quantity", cmd.Quantity, "user", cmd.User)
	return result, nil
}

// RegisterExit fails without touching the item or the ledger when the
// quantity on hand is not enough.
func (uc *MovementUseCase) RegisterExit(ctx context.Context, cmd ExitCommand) (*MovementResult, error) {
	if cmd.Quantity <= 0 {
		return nil, errors.NewValidationError("quantity must be greater than zero")
	}

	description := stock.ExitDescription(cmd.Notes, cmd.Responsible)
	result, err := uc.apply(ctx, cmd.ItemID, stock.MovementOut, cmd.Quantity, description, cmd.User,
		func(item *stock.Item) error {
			if err := item.Dispatch(cmd.Quantity); err != nil {
				if stderrors.Is(err, stock.ErrInsufficientStock) {
					uc.logger.Warnw("stock exit rejected", "item_id", item.ID(), "on_hand", item.Quantity(), "requested", cmd.Quantity)
					return errors.NewValidationError(stock.InsufficientStockMessage)
				}
				return errors.NewValidationError(err.Error())
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("stock exit registered", "item_id", cmd.ItemID, "quantity", cmd.Quantity, "responsible", cmd.Responsible)
	return result, nil
}

// apply reads the item under a row lock, lets change adjust the quantity and
// writes the item and its ledger row in the same transaction.
func (uc *MovementUseCase) apply(
	ctx context.Context,
	itemID uint,
	kind stock.MovementType,
	qty float64,
	description, user string,
	change func(item *stock.Item) error,
) (*MovementResult, error) {
	var (
		item *stock.Item
		mv   *stock.Movement
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, err := uc.itemRepo.GetByIDForUpdate(txCtx, itemID)
		if err != nil {
			return err
		}
		if current == nil {
			return errors.NewNotFoundError("stock item not found")
		}
		if err := change(current); err != nil {
			return err
		}
		m, err := stock.NewMovement(kind, current.ID(), qty, description, user)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.itemRepo.Update(txCtx, current); err != nil {
			return err
		}
		if err := uc.movementRepo.Create(txCtx, m); err != nil {
			return err
		}
		item, mv = current, m
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to record stock movement", "item_id", itemID, "type", kind, "error", err)
		return nil, errors.NewInternalError("failed to record stock movement")
	}

	out := dto.ToMovementDTO(mv)
	out.ItemName = item.Name()
	return &MovementResult{Item: dto.ToItemDTO(item), Movement: out}, nil
}
