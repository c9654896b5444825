// Package stock models consumable materials and their movement ledger.
package stock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is derived from the quantity on hand.
type Status string

const (
	StatusAvailable Status = "Disponível"
	StatusLow       Status = "Baixo Estoque"
	StatusReserved  Status = "Reservado"
)

// NoCategory labels items without a category in summaries.
const NoCategory = "Sem Categoria"

// ErrInsufficientStock is returned when an exit exceeds the quantity on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockMessage is the user facing text of ErrInsufficientStock.
const InsufficientStockMessage = "Quantidade insuficiente em estoque."

// Thresholds are the inclusive upper bounds of the Reservado and Baixo
// Estoque tiers.
type Thresholds struct {
	Reserved float64
	Low      float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Reserved: 0, Low: 5}
}

// StatusFor classifies a quantity.
func (th Thresholds) StatusFor(quantity float64) Status {
	switch {
	case quantity <= th.Reserved:
		return StatusReserved
	case quantity <= th.Low:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// Item is a stocked material. status is recomputed after every mutation.
type Item struct {
	id         uint
	name       string
	category   string
	quantity   float64
	unit       string
	status     Status
	thresholds Thresholds
	createdAt  time.Time
	updatedAt  time.Time
}

// ItemFields are the manually editable fields of an item.
type ItemFields struct {
	Name     string
	Category string
	Unit     string
	Quantity float64
}

func NewItem(f ItemFields, th Thresholds) (*Item, error) {
	now := time.Now().UTC()
	it := &Item{thresholds: th, createdAt: now}
	if err := it.apply(f); err != nil {
		return nil, err
	}
	it.updatedAt = now
	return it, nil
}

func ReconstructItem(id uint, f ItemFields, status Status, th Thresholds, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:         id,
		name:       f.Name,
		category:   f.Category,
		quantity:   f.Quantity,
		unit:       f.Unit,
		status:     status,
		thresholds: th,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (it *Item) apply(f ItemFields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fmt.Errorf("item name is required")
	}
	if f.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	it.name = name
	it.category = strings.TrimSpace(f.Category)
	it.unit = strings.TrimSpace(f.Unit)
	it.quantity = f.Quantity
	it.recompute()
	return nil
}

func (it *Item) recompute() {
	it.status = it.thresholds.StatusFor(it.quantity)
	it.updatedAt = time.Now().UTC()
}

func (it *Item) ID() uint             { return it.id }
func (it *Item) Name() string         { return it.name }
func (it *Item) Category() string     { return it.category }
func (it *Item) Quantity() float64    { return it.quantity }
func (it *Item) Unit() string         { return it.unit }
func (it *Item) Status() Status       { return it.status }
func (it *Item) CreatedAt() time.Time { return it.createdAt }
func (it *Item) UpdatedAt() time.Time { return it.updatedAt }

// CategoryLabel is the category, or NoCategory when empty.
func (it *Item) CategoryLabel() string {
	if it.category == "" {
		return NoCategory
	}
	return it.category
}

func (it *Item) SetID(id uint) {
	it.id = id
}

// Receive adds qty to the quantity on hand.
func (it *Item) Receive(qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	it.quantity += qty
	it.recompute()
	return nil
}

// Dispatch removes qty, failing with ErrInsufficientStock and leaving the
// item untouched when not enough is on hand.
func (it *Item) Dispatch(qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	if it.quantity < qty {
		return ErrInsufficientStock
	}
	it.quantity -= qty
	it.recompute()
	return nil
}

// Edit applies a manual edit and returns the quantity delta it caused.
func (it *Item) Edit(f ItemFields) (float64, error) {
	before := it.quantity
	if err := it.apply(f); err != nil {
		return 0, err
	}
	return it.quantity - before, nil
}
