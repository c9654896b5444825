package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/mappers"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/db"
)

type StockItemRepository struct {
	db     *gorm.DB
	mapper mappers.StockMapper
}

func NewStockItemRepository(db *gorm.DB, th stock.Thresholds) *StockItemRepository {
	return &StockItemRepository{db: db, mapper: mappers.NewStockMapper(th)}
}

func (r *StockItemRepository) Create(ctx context.Context, it *stock.Item) error {
	model := r.mapper.ItemToModel(it)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create stock item: %w", err)
	}
	it.SetID(model.ID)
	return nil
}

// Update writes every column so a quantity of zero persists.
func (r *StockItemRepository) Update(ctx context.Context, it *stock.Item) error {
	model := r.mapper.ItemToModel(it)
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StockItemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.StockItemModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepository) GetByID(ctx context.Context, id uint) (*stock.Item, error) {
	return r.getByID(db.GetTxFromContext(ctx, r.db), id)
}

func (r *StockItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*stock.Item, error) {
	return r.getByID(db.GetTxFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *StockItemRepository) getByID(tx *gorm.DB, id uint) (*stock.Item, error) {
	var model models.StockItemModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stock item: %w", err)
	}
	return r.mapper.ItemToDomain(&model), nil
}

func (r *StockItemRepository) List(ctx context.Context, filter stock.ItemFilter) ([]*stock.Item, error) {
	var rows []models.StockItemModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(
			db.WhereIfSet("categoria", filter.Category),
			db.WhereIfSet("status", string(filter.Status)),
		).
		Order("nome ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}

	out := make([]*stock.Item, len(rows))
	for i := range rows {
		out[i] = r.mapper.ItemToDomain(&rows[i])
	}
	return out, nil
}

func (r *StockItemRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StockItemModel{}).
		Where("categoria IS NOT NULL AND categoria <> ''").
		Distinct().
		Order("categoria ASC").
		Pluck("categoria", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock categories: %w", err)
	}
	return categories, nil
}

type StockMovementRepository struct {
	db     *gorm.DB
	mapper mappers.StockMapper
}

func NewStockMovementRepository(db *gorm.DB) *StockMovementRepository {
	return &StockMovementRepository{db: db, mapper: mappers.NewStockMapper(stock.DefaultThresholds())}
}

func (r *StockMovementRepository) Create(ctx context.Context, mv *stock.Movement) error {
	model := r.mapper.MovementToModel(mv)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create stock movement: %w", err)
	}
	mv.SetID(model.ID)
	return nil
}

type movementRow struct {
	models.StockMovementModel
	ItemName string
}

// ListRecent joins the item name; movements of deleted items keep an empty name.
func (r *StockMovementRepository) ListRecent(ctx context.Context, limit int) ([]*stock.Movement, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Table("estoque_movimentacoes AS m").
		Select("m.*, i.nome AS item_name").
		Joins("LEFT JOIN estoque_itens AS i ON i.id = m.item_id").
		Order("m.timestamp DESC, m.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []movementRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}

	out := make([]*stock.Movement, len(rows))
	for i := range rows {
		out[i] = r.mapper.MovementToDomain(&rows[i].StockMovementModel, rows[i].ItemName)
	}
	return out, nil
}

func (r *StockMovementRepository) CountByType(ctx context.Context, kind stock.MovementType) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StockMovementModel{}).
		Where("tipo = ?", string(kind)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count stock movements: %w", err)
	}
	return count, nil
}

func (r *StockMovementRepository) DeleteByItem(ctx context.Context, itemID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("item_id = ?", itemID).
		Delete(&models.StockMovementModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete stock movements: %w", err)
	}
	return nil
}
