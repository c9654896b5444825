package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	AssignedTo string
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	thresholds ticket.Thresholds
	now        func() time.Time
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, thresholds ticket.Thresholds, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		thresholds: thresholds,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		AssignedTo: strings.TrimSpace(query.AssignedTo),
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if query.Status != "" {
		status, err := vo.ParseTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", query.Status)
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.ParsePriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", query.Priority)
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOList(tickets, uc.now(), uc.thresholds),
		Total:   total,
	}, nil
}

// ListMyTicketsUseCase lists the open work of one assignee.
type ListMyTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	thresholds ticket.Thresholds
	now        func() time.Time
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.TicketRepository, thresholds ticket.Thresholds, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		thresholds: thresholds,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, username string) ([]dto.TicketDTO, error) {
	if strings.TrimSpace(username) == "" {
		return []dto.TicketDTO{}, nil
	}
	tickets, err := uc.ticketRepo.ListAssignedOpen(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to list assigned tickets", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}
	return dto.ToTicketDTOList(tickets, uc.now(), uc.thresholds), nil
}
