package models

import "time"

type StockItemModel struct {
	ID         uint    `gorm:"primaryKey"`
	Nome       string  `gorm:"size:150;not null;index"`
	Categoria  string  `gorm:"size:100;index"`
	Quantidade float64 `gorm:"not null;default:0"`
	Unidade    string  `gorm:"size:20"`
	Status     string  `gorm:"size:30;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (StockItemModel) TableName() string {
	return "estoque_itens"
}

type StockMovementModel struct {
	ID         uint      `gorm:"primaryKey"`
	Tipo       string    `gorm:"size:10;not null;index"`
	ItemID     uint      `gorm:"not null;index"`
	Quantidade float64   `gorm:"not null"`
	Descricao  string    `gorm:"type:text"`
	Usuario    string    `gorm:"size:100"`
	Timestamp  time.Time `gorm:"not null;index"`
}

func (StockMovementModel) TableName() string {
	return "estoque_movimentacoes"
}
