package usecases

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

func closedTicket(t *testing.T, id uint, created time.Time, resolution time.Duration) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, "t", "d", vo.StatusClosed, vo.PriorityLow, "", "", "", created, created.Add(resolution))
	require.NoError(t, err)
	return tk
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	t.Run("no closed tickets", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(context.Context) (map[vo.TicketStatus]int64, error) {
				return map[vo.TicketStatus]int64{vo.StatusOpen: 3}, nil
			},
		}
		result, err := NewGetDashboardUseCase(repo, logger.NewNop()).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Open)
		assert.Zero(t, result.Closed)
		assert.Equal(t, "N/A", result.AverageResolution)
	})

	t.Run("average over closed tickets", func(t *testing.T) {
		repo := &mockTicketRepository{
			CountByStatusFunc: func(context.Context) (map[vo.TicketStatus]int64, error) {
				return map[vo.TicketStatus]int64{vo.StatusClosed: 2, vo.StatusInProgress: 1}, nil
			},
			ListByStatusFunc: func(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
				assert.Equal(t, vo.StatusClosed, status)
				return []*ticket.Ticket{
					closedTicket(t, 1, openedAt, 2*time.Hour),
					closedTicket(t, 2, openedAt, 48*time.Hour),
				}, nil
			},
		}
		result, err := NewGetDashboardUseCase(repo, logger.NewNop()).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Closed)
		assert.Equal(t, int64(1), result.InProgress)
		assert.Equal(t, "1d 1h", result.AverageResolution)
	})
}

func TestListTicketsUseCase_Execute(t *testing.T) {
	var got ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return []*ticket.Ticket{newTestTicket(t, vo.StatusOpen, "joao")}, 1, nil
		},
	}
	uc := NewListTicketsUseCase(repo, ticket.DefaultThresholds(), logger.NewNop())
	uc.now = func() time.Time { return openedAt.Add(5 * time.Hour) }

	result, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "Aberto", AssignedTo: " joao ", Page: 2, PageSize: 10})

	require.NoError(t, err)
	require.NotNil(t, got.Status)
	assert.Equal(t, vo.StatusOpen, *got.Status)
	assert.Nil(t, got.Priority)
	assert.Equal(t, "joao", got.AssignedTo)
	assert.Equal(t, 2, got.Page)
	require.Len(t, result.Tickets, 1)
	assert.Equal(t, "at_risk", result.Tickets[0].SLA.Tier)
	assert.Equal(t, "yellow", result.Tickets[0].SLA.Color)
	assert.Equal(t, "5h 0m", result.Tickets[0].SLA.Elapsed)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Priority: "Urgente"})
	assert.True(t, errors.IsValidationError(err))
}

func TestListMyTicketsUseCase_Execute(t *testing.T) {
	repo := &mockTicketRepository{
		ListAssignedOpenFunc: func(ctx context.Context, username string) ([]*ticket.Ticket, error) {
			assert.Equal(t, "joao", username)
			return []*ticket.Ticket{newTestTicket(t, vo.StatusInProgress, "joao")}, nil
		},
	}
	uc := NewListMyTicketsUseCase(repo, ticket.DefaultThresholds(), logger.NewNop())

	result, err := uc.Execute(context.Background(), "joao")
	require.NoError(t, err)
	assert.Len(t, result, 1)

	empty, err := uc.Execute(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	current := newTestTicket(t, vo.StatusOpen, "")
	tickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			if id == current.ID() {
				return current, nil
			}
			return nil, nil
		},
	}
	history := &mockHistoryRepository{
		ListByTicketFunc: func(context.Context, uint) ([]*ticket.History, error) {
			return []*ticket.History{ticket.ReconstructHistory(1, 7, "joao", "Status: 'Aberto' ➔ 'Em Andamento'", openedAt)}, nil
		},
	}
	comments := &mockCommentRepository{
		ListByTicketFunc: func(context.Context, uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{ticket.ReconstructComment(1, 7, "joao", "ok", openedAt)}, nil
		},
	}
	users := &mockUserRepository{
		ListAssignableFunc: func(context.Context) ([]*user.User, error) {
			return []*user.User{newStaffUser(t, "joao", authorization.RoleSupport, true)}, nil
		},
	}
	uc := NewGetTicketUseCase(tickets, history, comments, &mockAttachmentRepository{}, users, ticket.DefaultThresholds(), logger.NewNop())

	detail, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint(7), detail.Ticket.ID)
	assert.Len(t, detail.History, 1)
	assert.Len(t, detail.Comments, 1)
	assert.NotNil(t, detail.Attachments)
	require.Len(t, detail.Assignees, 1)
	assert.Equal(t, "João Silva", detail.Assignees[0].DisplayName)

	_, err = uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDownloadAttachmentUseCase_Execute(t *testing.T) {
	uc := NewDownloadAttachmentUseCase(&mockFileStorage{}, logger.NewNop())
	_, err := uc.Execute(context.Background(), "missing.txt")
	assert.True(t, errors.IsNotFoundError(err))

	files := &mockFileStorage{}
	files.OpenFunc = func(string) (*os.File, error) { return nil, storage.ErrInvalidFilename }
	uc = NewDownloadAttachmentUseCase(files, logger.NewNop())
	_, err = uc.Execute(context.Background(), "../etc/passwd")
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}
