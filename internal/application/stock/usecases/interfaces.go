package usecases

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
)

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error)
}

type UpdateItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateItemCommand) (*dto.ItemDTO, error)
}

type DeleteItemExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type MovementRegistrar interface {
	RegisterEntry(ctx context.Context, cmd EntryCommand) (*MovementResult, error)
	RegisterExit(ctx context.Context, cmd ExitCommand) (*MovementResult, error)
}

type StockQuerier interface {
	ListItems(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error)
	Categories(ctx context.Context) ([]string, error)
	Overview(ctx context.Context) (*dto.OverviewDTO, error)
	History(ctx context.Context) ([]dto.MovementDTO, error)
}
