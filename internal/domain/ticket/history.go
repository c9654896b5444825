package ticket

import (
	"fmt"
	"time"
)

// History is the write-once audit row of one update.
type History struct {
	id          uint
	ticketID    uint
	changedBy   string
	description string
	changedAt   time.Time
}

// NewHistory records a non-empty change set.
func NewHistory(ticketID uint, changedBy string, changes ChangeSet, at time.Time) (*History, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if changes.IsEmpty() {
		return nil, fmt.Errorf("history requires at least one change")
	}
	return &History{
		ticketID:    ticketID,
		changedBy:   changedBy,
		description: changes.Description(),
		changedAt:   at.UTC(),
	}, nil
}

func ReconstructHistory(id, ticketID uint, changedBy, description string, changedAt time.Time) *History {
	return &History{
		id:          id,
		ticketID:    ticketID,
		changedBy:   changedBy,
		description: description,
		changedAt:   changedAt,
	}
}

func (h *History) ID() uint             { return h.id }
func (h *History) TicketID() uint       { return h.ticketID }
func (h *History) ChangedBy() string    { return h.changedBy }
func (h *History) Description() string  { return h.description }
func (h *History) ChangedAt() time.Time { return h.changedAt }

func (h *History) SetID(id uint) {
	h.id = id
}
