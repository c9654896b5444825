package usecases

import (
	"context"
	"io"
	"os"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
)

type mockTicketRepository struct {
	CreateFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	ListAssignedOpenFunc func(ctx context.Context, username string) ([]*ticket.Ticket, error)
	ListByStatusFunc     func(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error)
	CountByStatusFunc    func(ctx context.Context) (map[vo.TicketStatus]int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAssignedOpen(ctx context.Context, username string) ([]*ticket.Ticket, error) {
	if m.ListAssignedOpenFunc != nil {
		return m.ListAssignedOpenFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByStatus(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.TicketStatus]int64{}, nil
}

type mockHistoryRepository struct {
	CreateFunc       func(ctx context.Context, h *ticket.History) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.History, error)
}

func (m *mockHistoryRepository) Create(ctx context.Context, h *ticket.History) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.History, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc        func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	CountByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockAttachmentRepository struct {
	CreateFunc       func(ctx context.Context, a *ticket.Attachment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByUsernameFunc  func(ctx context.Context, username string) (*user.User, error)
	ListAssignableFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) Update(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) Delete(context.Context, uint) error       { return nil }

func (m *mockUserRepository) GetByID(context.Context, uint) (*user.User, error) { return nil, nil }

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(context.Context, string) (bool, error) {
	return false, nil
}

func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListAssignable(ctx context.Context) ([]*user.User, error) {
	if m.ListAssignableFunc != nil {
		return m.ListAssignableFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	TicketReceivedFunc func(ctx context.Context, t *ticket.Ticket) error
	TicketUpdatedFunc  func(ctx context.Context, t *ticket.Ticket, changes ticket.ChangeSet, comment string) error
}

func (m *mockNotifier) TicketReceived(ctx context.Context, t *ticket.Ticket) error {
	if m.TicketReceivedFunc != nil {
		return m.TicketReceivedFunc(ctx, t)
	}
	return nil
}

func (m *mockNotifier) TicketUpdated(ctx context.Context, t *ticket.Ticket, changes ticket.ChangeSet, comment string) error {
	if m.TicketUpdatedFunc != nil {
		return m.TicketUpdatedFunc(ctx, t, changes, comment)
	}
	return nil
}

type mockFileStorage struct {
	SaveFunc func(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error)
	OpenFunc func(filename string) (*os.File, error)
}

func (m *mockFileStorage) Save(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, r)
	}
	return &storage.StoredFile{Filename: name, Path: "uploads/" + name}, nil
}

func (m *mockFileStorage) Open(filename string) (*os.File, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(filename)
	}
	return nil, storage.ErrFileNotFound
}

// inlineTx runs the function without a database and reports its error.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}
