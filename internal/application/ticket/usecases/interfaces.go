package usecases

import (
	"context"
	"io"
	"os"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
)

// Notifier mails the requester about their ticket.
type Notifier interface {
	TicketReceived(ctx context.Context, t *ticket.Ticket) error
	TicketUpdated(ctx context.Context, t *ticket.Ticket, changes ticket.ChangeSet, comment string) error
}

// FileStorage keeps uploaded attachment contents.
type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error)
	Open(filename string) (*os.File, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListMyTicketsExecutor interface {
	Execute(ctx context.Context, username string) ([]dto.TicketDTO, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context) (*dto.DashboardDTO, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, filename string) (*os.File, error)
}
