package usecases

import (
	"context"
	"io"
	"time"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// Upload is an optional file submitted with a request.
type Upload struct {
	Filename string
	Content  io.Reader
}

type CreateTicketCommand struct {
	Title          string
	Description    string
	Priority       string
	RequesterName  string
	RequesterEmail string
	Upload         *Upload
}

type CreateTicketResult struct {
	Ticket     dto.TicketDTO      `json:"ticket"`
	Attachment *dto.AttachmentDTO `json:"attachment,omitempty"`
	// Warning reports a best-effort step that failed after commit.
	Warning string `json:"warning,omitempty"`
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	files          FileStorage
	notifier       Notifier
	txManager      db.Transactor
	thresholds     ticket.Thresholds
	now            func() time.Time
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	files FileStorage,
	notifier Notifier,
	txManager db.Transactor,
	thresholds ticket.Thresholds,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		files:          files,
		notifier:       notifier,
		txManager:      txManager,
		thresholds:     thresholds,
		now:            time.Now,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "requester", cmd.RequesterEmail)

	priority, err := vo.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority", cmd.Priority)
	}

	now := uc.now()
	t, err := ticket.NewTicket(cmd.Title, cmd.Description, priority, cmd.RequesterName, cmd.RequesterEmail, now)
	if err != nil {
		uc.logger.Warnw("invalid ticket", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	}); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	result := &CreateTicketResult{Ticket: dto.ToTicketDTO(t, now, uc.thresholds)}

	if cmd.Upload != nil {
		att, err := storeAttachment(ctx, uc.files, uc.attachmentRepo, t.ID(), *cmd.Upload, now)
		if err != nil {
			uc.logger.Errorw("failed to store ticket attachment", "ticket_id", t.ID(), "error", err)
			return nil, err
		}
		a := dto.ToAttachmentDTO(att)
		result.Attachment = &a
	}

	if err := uc.notifier.TicketReceived(ctx, t); err != nil {
		uc.logger.Warnw("failed to send ticket confirmation", "ticket_id", t.ID(), "error", err)
		result.Warning = "ticket created but the confirmation email could not be sent"
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "priority", t.Priority())
	return result, nil
}
