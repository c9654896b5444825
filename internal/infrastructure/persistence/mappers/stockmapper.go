package mappers

import (
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
)

// StockMapper rebuilds items with the configured status thresholds.
type StockMapper interface {
	ItemToModel(it *stock.Item) *models.StockItemModel
	ItemToDomain(m *models.StockItemModel) *stock.Item
	MovementToModel(mv *stock.Movement) *models.StockMovementModel
	MovementToDomain(m *models.StockMovementModel, itemName string) *stock.Movement
}

type StockMapperImpl struct {
	thresholds stock.Thresholds
}

func NewStockMapper(th stock.Thresholds) StockMapper {
	return &StockMapperImpl{thresholds: th}
}

func (m *StockMapperImpl) ItemToModel(it *stock.Item) *models.StockItemModel {
	return &models.StockItemModel{
		ID:         it.ID(),
		Nome:       it.Name(),
		Categoria:  it.Category(),
		Quantidade: it.Quantity(),
		Unidade:    it.Unit(),
		Status:     string(it.Status()),
		CreatedAt:  it.CreatedAt(),
		UpdatedAt:  it.UpdatedAt(),
	}
}

func (m *StockMapperImpl) ItemToDomain(model *models.StockItemModel) *stock.Item {
	if model == nil {
		return nil
	}
	return stock.ReconstructItem(
		model.ID,
		stock.ItemFields{
			Name:     model.Nome,
			Category: model.Categoria,
			Unit:     model.Unidade,
			Quantity: model.Quantidade,
		},
		stock.Status(model.Status),
		m.thresholds,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *StockMapperImpl) MovementToModel(mv *stock.Movement) *models.StockMovementModel {
	return &models.StockMovementModel{
		ID:         mv.ID(),
		Tipo:       string(mv.Type()),
		ItemID:     mv.ItemID(),
		Quantidade: mv.Quantity(),
		Descricao:  mv.Description(),
		Usuario:    mv.User(),
		Timestamp:  mv.Timestamp(),
	}
}

func (m *StockMapperImpl) MovementToDomain(model *models.StockMovementModel, itemName string) *stock.Movement {
	return stock.ReconstructMovement(
		model.ID,
		stock.MovementType(model.Tipo),
		model.ItemID,
		itemName,
		model.Quantidade,
		model.Descricao,
		model.Usuario,
		model.Timestamp,
	)
}
