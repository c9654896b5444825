package stock

import (
	"fmt"
	"strings"
	"time"
)

// MovementType is the direction of a ledger entry.
type MovementType string

const (
	MovementIn  MovementType = "entrada"
	MovementOut MovementType = "saida"
)

func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// DefaultEntryDescription describes an entry registered without notes.
const DefaultEntryDescription = "Entrada de material"

// Movement is an append-only ledger entry paired with one quantity change.
type Movement struct {
	id          uint
	kind        MovementType
	itemID      uint
	itemName    string
	quantity    float64
	description string
	user        string
	timestamp   time.Time
}

func NewMovement(kind MovementType, itemID uint, qty float64, description, user string) (*Movement, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid movement type: %s", kind)
	}
	if itemID == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be greater than zero")
	}
	return &Movement{
		kind:        kind,
		itemID:      itemID,
		quantity:    qty,
		description: description,
		user:        user,
		timestamp:   time.Now().UTC(),
	}, nil
}

func ReconstructMovement(id uint, kind MovementType, itemID uint, itemName string, qty float64, description, user string, ts time.Time) *Movement {
	return &Movement{
		id:          id,
		kind:        kind,
		itemID:      itemID,
		itemName:    itemName,
		quantity:    qty,
		description: description,
		user:        user,
		timestamp:   ts,
	}
}

func (m *Movement) ID() uint             { return m.id }
func (m *Movement) Type() MovementType   { return m.kind }
func (m *Movement) ItemID() uint         { return m.itemID }
func (m *Movement) ItemName() string     { return m.itemName }
func (m *Movement) Quantity() float64    { return m.quantity }
func (m *Movement) Description() string  { return m.description }
func (m *Movement) User() string         { return m.user }
func (m *Movement) Timestamp() time.Time { return m.timestamp }

func (m *Movement) SetID(id uint) {
	m.id = id
}

// EntryDescription returns notes, or DefaultEntryDescription when blank.
func EntryDescription(notes string) string {
	if n := strings.TrimSpace(notes); n != "" {
		return n
	}
	return DefaultEntryDescription
}

// ExitDescription appends the responsible party to the notes.
func ExitDescription(notes, responsible string) string {
	return strings.TrimSpace(fmt.Sprintf("%s (Responsável: %s)", strings.TrimSpace(notes), strings.TrimSpace(responsible)))
}
