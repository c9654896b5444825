package ticket

import (
	"context"

	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID returns (nil, nil) when the ticket does not exist.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// ListAssignedOpen returns non-terminal tickets assigned to username.
	ListAssignedOpen(ctx context.Context, username string) ([]*Ticket, error)
	ListByStatus(ctx context.Context, status vo.TicketStatus) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
}

// TicketFilter narrows List. Results are ordered by id ascending.
type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	AssignedTo string
	Page       int
	PageSize   int
}

type HistoryRepository interface {
	Create(ctx context.Context, history *History) error
	// ListByTicket returns newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*History, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByTicket returns newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
	CountByTicket(ctx context.Context, ticketID uint) (int64, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
