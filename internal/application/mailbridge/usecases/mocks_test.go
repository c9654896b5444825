package usecases

import (
	"context"
	"io"
	"sync"

	"github.com/synerjet/bendesk/internal/application/mailbridge"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
)

// fakeSource returns a message until it is marked read.
type fakeSource struct {
	mu          sync.Mutex
	messages    []mailbridge.Message
	attachments map[string][]mailbridge.Attachment
	marked      []string
	fetchErr    error
}

func newFakeSource(msgs ...mailbridge.Message) *fakeSource {
	return &fakeSource{messages: msgs, attachments: map[string][]mailbridge.Attachment{}}
}

func (s *fakeSource) FetchUnreadMessages(context.Context) ([]mailbridge.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	out := make([]mailbridge.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *fakeSource) FetchAttachments(_ context.Context, id string) ([]mailbridge.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attachments[id], nil
}

func (s *fakeSource) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, id)
	kept := s.messages[:0]
	for _, m := range s.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.messages = kept
	return nil
}

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
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

func (m *mockTicketRepository) List(context.Context, ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAssignedOpen(context.Context, string) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) ListByStatus(context.Context, vo.TicketStatus) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(context.Context) (map[vo.TicketStatus]int64, error) {
	return nil, nil
}

type mockCommentRepository struct {
	CreateFunc func(ctx context.Context, c *ticket.Comment) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(context.Context, uint) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) CountByTicket(context.Context, uint) (int64, error) { return 0, nil }

type mockAttachmentRepository struct {
	CreateFunc func(ctx context.Context, a *ticket.Attachment) error
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(context.Context, uint) ([]*ticket.Attachment, error) {
	return nil, nil
}

type mockFileStorage struct {
	SaveFunc func(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error)
}

func (m *mockFileStorage) Save(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, name, r)
	}
	return &storage.StoredFile{Filename: name, Path: "uploads/" + name}, nil
}

type mockNotifier struct {
	TicketReceivedFunc func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockNotifier) TicketReceived(ctx context.Context, t *ticket.Ticket) error {
	if m.TicketReceivedFunc != nil {
		return m.TicketReceivedFunc(ctx, t)
	}
	return nil
}

type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
