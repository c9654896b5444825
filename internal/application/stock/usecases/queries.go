package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// RecentMovementsLimit bounds the movements shown on the overview.
const RecentMovementsLimit = 20

type ListItemsQuery struct {
	Category string
	Status   string
}

type ListItemsResult struct {
	Items      []dto.ItemDTO `json:"itens"`
	Categories []string      `json:"categorias"`
}

type StockQueryUseCase struct {
	itemRepo     stock.ItemRepository
	movementRepo stock.MovementRepository
	logger       logger.Interface
}

func NewStockQueryUseCase(itemRepo stock.ItemRepository, movementRepo stock.MovementRepository, logger logger.Interface) *StockQueryUseCase {
	return &StockQueryUseCase{itemRepo: itemRepo, movementRepo: movementRepo, logger: logger}
}

// ListItems returns the filtered items and every known category.
func (uc *StockQueryUseCase) ListItems(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error) {
	status := stock.Status(strings.TrimSpace(query.Status))
	switch status {
	case "", stock.StatusAvailable, stock.StatusLow, stock.StatusReserved:
	default:
		return nil, errors.NewValidationError("invalid stock status", query.Status)
	}

	items, err := uc.itemRepo.List(ctx, stock.ItemFilter{Category: strings.TrimSpace(query.Category), Status: status})
	if err != nil {
		uc.logger.Errorw("failed to list stock items", "error", err)
		return nil, errors.NewInternalError("failed to list stock items")
	}
	categories, err := uc.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &ListItemsResult{Items: dto.ToItemDTOList(items), Categories: categories}, nil
}

func (uc *StockQueryUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.itemRepo.Categories(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list stock categories", "error", err)
		return nil, errors.NewInternalError("failed to list stock categories")
	}
	return categories, nil
}

func (uc *StockQueryUseCase) Overview(ctx context.Context) (*dto.OverviewDTO, error) {
	items, err := uc.itemRepo.List(ctx, stock.ItemFilter{})
	if err != nil {
		uc.logger.Errorw("failed to list stock items", "error", err)
		return nil, errors.NewInternalError("failed to load stock overview")
	}

	counts := map[string]int{}
	for _, it := range items {
		counts[it.CategoryLabel()]++
	}
	categories := make([]dto.CategoryCount, 0, len(counts))
	for name, n := range counts {
		categories = append(categories, dto.CategoryCount{Category: name, Items: n})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	entries, err := uc.movementRepo.CountByType(ctx, stock.MovementIn)
	if err != nil {
		uc.logger.Errorw("failed to count stock entries", "error", err)
		return nil, errors.NewInternalError("failed to load stock overview")
	}
	exits, err := uc.movementRepo.CountByType(ctx, stock.MovementOut)
	if err != nil {
		uc.logger.Errorw("failed to count stock exits", "error", err)
		return nil, errors.NewInternalError("failed to load stock overview")
	}
	recent, err := uc.movementRepo.ListRecent(ctx, RecentMovementsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent movements", "error", err)
		return nil, errors.NewInternalError("failed to load stock overview")
	}

	return &dto.OverviewDTO{
		TotalItems:      len(items),
		Categories:      categories,
		Entries:         entries,
		Exits:           exits,
		RecentMovements: dto.ToMovementDTOList(recent),
	}, nil
}

// History returns every movement, newest first.
func (uc *StockQueryUseCase) History(ctx context.Context) ([]dto.MovementDTO, error) {
	all, err := uc.movementRepo.ListRecent(ctx, 0)
	if err != nil {
		uc.logger.Errorw("failed to list stock history", "error", err)
		return nil, errors.NewInternalError("failed to list stock history")
	}
	return dto.ToMovementDTOList(all), nil
}
