package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID   uint
	Status     string
	Priority   string
	AssignedTo string
	Comment    string
	Actor      string
	ActorRole  authorization.UserRole
}

type UpdateTicketResult struct {
	Ticket  dto.TicketDTO   `json:"ticket"`
	Changes []string        `json:"changes"`
	Comment *dto.CommentDTO `json:"comment,omitempty"`
	// NotificationWarning is set when the requester could not be notified.
	// The update itself is committed.
	NotificationWarning string `json:"notification_warning,omitempty"`
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	notifier    Notifier
	txManager   db.Transactor
	checker     authorization.Checker
	thresholds  ticket.Thresholds
	now         func() time.Time
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	notifier Notifier,
	txManager db.Transactor,
	checker authorization.Checker,
	thresholds ticket.Thresholds,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		txManager:   txManager,
		checker:     checker,
		thresholds:  thresholds,
		now:         time.Now,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor", cmd.Actor)

	status, err := vo.ParseTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status", cmd.Status)
	}
	if cmd.Priority == "" {
		return nil, errors.NewValidationError("priority is required")
	}
	priority, err := vo.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority", cmd.Priority)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assignee := strings.TrimSpace(cmd.AssignedTo)
	if assignee != "" && assignee != t.AssignedTo() {
		if err := uc.validateAssignee(ctx, assignee); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	changes, err := t.ApplyUpdate(ticket.UpdateFields{Status: status, Priority: priority, AssignedTo: assignee}, now)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if changesAssignee(changes) && !uc.checker.Allowed(cmd.ActorRole, authorization.PermAssignTickets) {
		uc.logger.Warnw("assignment denied", "ticket_id", t.ID(), "actor", cmd.Actor, "role", cmd.ActorRole)
		return nil, errors.NewForbiddenError("not allowed to assign tickets")
	}

	result := &UpdateTicketResult{Changes: changes.Lines()}
	commentText := strings.TrimSpace(cmd.Comment)
	if changes.IsEmpty() && commentText == "" {
		result.Ticket = dto.ToTicketDTO(t, now, uc.thresholds)
		return result, nil
	}

	var comment *ticket.Comment
	if commentText != "" {
		comment, err = ticket.NewComment(t.ID(), cmd.Actor, commentText, now)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// A comment alone leaves the ticket row, and so updated_at, untouched.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if !changes.IsEmpty() {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}
			h, err := ticket.NewHistory(t.ID(), cmd.Actor, changes, now)
			if err != nil {
				return err
			}
			if err := uc.historyRepo.Create(txCtx, h); err != nil {
				return err
			}
		}
		if comment != nil {
			return uc.commentRepo.Create(txCtx, comment)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	result.Ticket = dto.ToTicketDTO(t, now, uc.thresholds)
	if comment != nil {
		c := dto.ToCommentDTO(comment)
		result.Comment = &c
	}

	if !t.Status().IsCancelled() {
		if err := uc.notifier.TicketUpdated(ctx, t, changes, commentText); err != nil {
			uc.logger.Warnw("failed to notify requester", "ticket_id", t.ID(), "error", err)
			result.NotificationWarning = "ticket updated but the requester could not be notified"
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "changes", len(changes), "commented", comment != nil)
	return result, nil
}

func (uc *UpdateTicketUseCase) validateAssignee(ctx context.Context, username string) error {
	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get assignee", "username", username, "error", err)
		return errors.NewInternalError("failed to load assignee")
	}
	if u == nil || !u.IsAssignable() {
		return errors.NewValidationError("assignee must be an active support user", username)
	}
	return nil
}

func changesAssignee(changes ticket.ChangeSet) bool {
	for _, c := range changes {
		if c.Field == ticket.FieldAssignee {
			return true
		}
	}
	return false
}
