package usecases

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/ticket/dto"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// GetDashboardUseCase computes the status counts and the average
// resolution time over closed tickets.
type GetDashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	closed, err := uc.ticketRepo.ListByStatus(ctx, vo.StatusClosed)
	if err != nil {
		uc.logger.Errorw("failed to list closed tickets", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	return &dto.DashboardDTO{
		Open:              counts[vo.StatusOpen],
		InProgress:        counts[vo.StatusInProgress],
		Closed:            counts[vo.StatusClosed],
		Cancelled:         counts[vo.StatusCancelled],
		AverageResolution: ticket.AverageResolution(closed),
	}, nil
}
