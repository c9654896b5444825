package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID uint
	Upload   Upload
}

// AddAttachmentUseCase stores a file on an existing ticket. It never
// touches the ticket fields.
type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	files          FileStorage
	now            func() time.Time
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	files FileStorage,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		files:          files,
		now:            time.Now,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	att, err := storeAttachment(ctx, uc.files, uc.attachmentRepo, t.ID(), cmd.Upload, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to add attachment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added", "ticket_id", t.ID(), "filename", att.Filename())
	result := dto.ToAttachmentDTO(att)
	return &result, nil
}

// storeAttachment saves the upload and records it in its own commit.
func storeAttachment(
	ctx context.Context,
	files FileStorage,
	repo ticket.AttachmentRepository,
	ticketID uint,
	up Upload,
	at time.Time,
) (*ticket.Attachment, error) {
	stored, err := files.Save(ctx, up.Filename, up.Content)
	if err != nil {
		switch {
		case stderrors.Is(err, storage.ErrFileTooLarge):
			return nil, errors.NewValidationError("attachment exceeds the upload size limit")
		case stderrors.Is(err, storage.ErrInvalidFilename):
			return nil, errors.NewValidationError("invalid attachment filename")
		}
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	att, err := ticket.NewAttachment(ticketID, stored.Filename, stored.Path, at)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := repo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("failed to save attachment record: %w", err)
	}
	return att, nil
}
