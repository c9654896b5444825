package usecases

import (
	"context"
	"time"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	historyRepo    ticket.HistoryRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	userRepo       user.Repository
	thresholds     ticket.Thresholds
	now            func() time.Time
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	userRepo user.Repository,
	thresholds ticket.Thresholds,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		historyRepo:    historyRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		thresholds:     thresholds,
		now:            time.Now,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	history, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket history", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket attachments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	assignees, err := uc.userRepo.ListAssignable(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list assignable users", "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	return &dto.TicketDetailDTO{
		Ticket:      dto.ToTicketDTO(t, uc.now(), uc.thresholds),
		History:     dto.ToHistoryDTOList(history),
		Comments:    dto.ToCommentDTOList(comments),
		Attachments: dto.ToAttachmentDTOList(attachments),
		Assignees:   dto.ToAssigneeDTOList(assignees),
	}, nil
}
