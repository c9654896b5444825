package dto

import (
	"time"

	"github.com/synerjet/bendesk/internal/domain/stock"
)

type ItemDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Category  string    `json:"categoria"`
	Quantity  float64   `json:"quantidade"`
	Unit      string    `json:"unidade"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MovementDTO struct {
	ID          uint      `json:"id"`
	Type        string    `json:"tipo"`
	ItemID      uint      `json:"item_id"`
	ItemName    string    `json:"item_nome"`
	Quantity    float64   `json:"quantidade"`
	Description string    `json:"descricao"`
	User        string    `json:"usuario"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateItemRequest registers a material. NewCategory, when set, wins over
// Category.
type CreateItemRequest struct {
	Name        string  `json:"nome" binding:"required,max=120"`
	Category    string  `json:"categoria" binding:"max=80"`
	NewCategory string  `json:"nova_categoria" binding:"max=80"`
	Unit        string  `json:"unidade" binding:"max=20"`
	Quantity    float64 `json:"quantidade" binding:"gte=0"`
	Notes       string  `json:"observacoes"`
}

type UpdateItemRequest struct {
	Name     string  `json:"nome" binding:"required,max=120"`
	Category string  `json:"categoria" binding:"max=80"`
	Unit     string  `json:"unidade" binding:"max=20"`
	Quantity float64 `json:"quantidade" binding:"gte=0"`
}

type EntryRequest struct {
	Quantity float64 `json:"quantidade" binding:"required,gt=0"`
	Notes    string  `json:"observacoes"`
}

type ExitRequest struct {
	ItemID      uint    `json:"item_id" binding:"required"`
	Quantity    float64 `json:"quantidade" binding:"required,gt=0"`
	Responsible string  `json:"responsavel" binding:"required,max=120"`
	Notes       string  `json:"observacoes"`
}

type CategoryCount struct {
	Category string `json:"categoria"`
	Items    int    `json:"itens"`
}

type OverviewDTO struct {
	TotalItems      int             `json:"total_itens"`
	Categories      []CategoryCount `json:"categorias"`
	Entries         int64           `json:"entradas"`
	Exits           int64           `json:"saidas"`
	RecentMovements []MovementDTO   `json:"movimentacoes_recentes"`
}

func ToItemDTO(it *stock.Item) ItemDTO {
	return ItemDTO{
		ID:        it.ID(),
		Name:      it.Name(),
		Category:  it.Category(),
		Quantity:  it.Quantity(),
		Unit:      it.Unit(),
		Status:    string(it.Status()),
		CreatedAt: it.CreatedAt(),
		UpdatedAt: it.UpdatedAt(),
	}
}

func ToItemDTOList(items []*stock.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, ToItemDTO(it))
	}
	return out
}

func ToMovementDTO(m *stock.Movement) MovementDTO {
	return MovementDTO{
		ID:          m.ID(),
		Type:        string(m.Type()),
		ItemID:      m.ItemID(),
		ItemName:    m.ItemName(),
		Quantity:    m.Quantity(),
		Description: m.Description(),
		User:        m.User(),
		Timestamp:   m.Timestamp(),
	}
}

func ToMovementDTOList(ms []*stock.Movement) []MovementDTO {
	out := make([]MovementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMovementDTO(m))
	}
	return out
}
