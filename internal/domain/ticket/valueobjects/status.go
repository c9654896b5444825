package valueobjects

import "fmt"

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Aberto"
	StatusInProgress TicketStatus = "Em Andamento"
	StatusClosed     TicketStatus = "Encerrado"
	StatusCancelled  TicketStatus = "Cancelado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
	StatusCancelled:  true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsTerminal reports whether elapsed time is frozen at the last update.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusClosed || ts == StatusCancelled
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

func ParseTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %q", s)
	}
	return ts, nil
}

// Statuses lists every status in display order.
func Statuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusClosed, StatusCancelled}
}
