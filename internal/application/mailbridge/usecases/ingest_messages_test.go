package usecases

import (
	"context"
	stderrors "errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/application/mailbridge"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/services/markdown"
)

var (
	ticketCreatedAt = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	replyAt         = time.Date(2024, 6, 11, 15, 30, 0, 0, time.UTC)
)

type fixture struct {
	source      *fakeSource
	tickets     map[uint]*ticket.Ticket
	comments    []*ticket.Comment
	attachments []*ticket.Attachment
	confirmed   []uint
	uc          *IngestMessagesUseCase
}

func newFixture(t *testing.T, msgs ...mailbridge.Message) *fixture {
	t.Helper()
	existing, err := ticket.ReconstructTicket(123, "VPN", "Não conecta", vo.StatusInProgress, vo.PriorityHigh, "Ana", "ana@example.com", "joao", ticketCreatedAt, ticketCreatedAt)
	require.NoError(t, err)

	f := &fixture{
		source:  newFakeSource(msgs...),
		tickets: map[uint]*ticket.Ticket{123: existing},
	}
	nextID := uint(500)
	tickets := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			nextID++
			if err := tk.SetID(nextID); err != nil {
				return err
			}
			f.tickets[nextID] = tk
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return f.tickets[id], nil
		},
	}
	comments := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *ticket.Comment) error {
			f.comments = append(f.comments, c)
			return nil
		},
	}
	atts := &mockAttachmentRepository{
		CreateFunc: func(ctx context.Context, a *ticket.Attachment) error {
			f.attachments = append(f.attachments, a)
			return nil
		},
	}
	files := &mockFileStorage{}
	notifier := &mockNotifier{
		TicketReceivedFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			f.confirmed = append(f.confirmed, tk.ID())
			return nil
		},
	}

	f.uc = NewIngestMessagesUseCase(f.source, tickets, comments, atts, files, notifier, markdown.NewRenderer(), inlineTx{}, logger.NewNop())
	f.uc.now = func() time.Time { return replyAt }
	return f
}

func TestIngest_ReplyAppendsCommentAndTouchesTicket(t *testing.T) {
	f := newFixture(t, mailbridge.Message{
		ID:          "m1",
		Subject:     "RE: [Atualização Ticket [#123]] VPN - Ticket Atualizado",
		Body:        "Voltou a funcionar.\n\n--- Responda acima desta linha ---\nOlá Ana",
		SenderName:  "Ana Souza",
		SenderEmail: "ana@example.com",
		ReceivedAt:  replyAt,
	})

	result, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcomes[OutcomeCommented])
	require.Len(t, f.comments, 1)
	assert.Equal(t, "Voltou a funcionar.", f.comments[0].Text())
	assert.Equal(t, "Ana Souza", f.comments[0].Commenter())
	assert.Equal(t, replyAt, f.tickets[123].UpdatedAt())
	assert.Equal(t, []string{"m1"}, f.source.marked)
	assert.Empty(t, f.confirmed)
}

func TestIngest_ReplayAfterMarkReadIsNoop(t *testing.T) {
	f := newFixture(t, mailbridge.Message{
		ID:          "m1",
		Subject:     "[#123]",
		Body:        "ok",
		SenderEmail: "ana@example.com",
	})

	_, err := f.uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, second.Fetched)
	assert.Len(t, f.comments, 1)
	assert.Equal(t, "ana@example.com", f.comments[0].Commenter())
}

func TestIngest_UnknownTicketIsIgnored(t *testing.T) {
	f := newFixture(t, mailbridge.Message{ID: "m1", Subject: "RE: Ticket [#999]", Body: "oi", SenderEmail: "x@example.com"})

	result, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcomes[OutcomeIgnored])
	assert.Len(t, f.tickets, 1, "no ticket is opened for a reply")
	assert.Empty(t, f.comments)
	assert.Equal(t, []string{"m1"}, f.source.marked)
}

func TestIngest_UnresolvableTicketNumberIsIgnored(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{"zero", "RE: [#0] teste"},
		{"overflow", "RE: [#99999999999999999999999] teste"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, mailbridge.Message{ID: "m1", Subject: tt.subject, Body: "oi", SenderEmail: "x@example.com"})

			result, err := f.uc.Execute(context.Background())

			require.NoError(t, err)
			assert.Equal(t, 1, result.Outcomes[OutcomeIgnored])
			assert.Zero(t, result.Outcomes[OutcomeCreated])
			assert.Len(t, f.tickets, 1)
			assert.Empty(t, f.confirmed)
			assert.Empty(t, f.comments)
			assert.Equal(t, []string{"m1"}, f.source.marked)
		})
	}
}

func TestIngest_EmptyReplyOnlyTouches(t *testing.T) {
	f := newFixture(t, mailbridge.Message{
		ID:          "m1",
		Subject:     "[#123]",
		Body:        "Atenciosamente,\nAna",
		SenderEmail: "ana@example.com",
		ReceivedAt:  replyAt,
	})

	_, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.comments)
	assert.Equal(t, replyAt, f.tickets[123].UpdatedAt())
}

func TestIngest_NewMessageOpensTicket(t *testing.T) {
	received := time.Date(2024, 6, 12, 7, 45, 0, 0, time.UTC)
	f := newFixture(t, mailbridge.Message{
		ID:          "m2",
		Subject:     "",
		Body:        "<p>Monitor piscando</p><p>Sala 3</p>",
		BodyIsHTML:  true,
		SenderName:  "Carlos",
		SenderEmail: "carlos@example.com",
		ReceivedAt:  received,
	})
	f.source.attachments["m2"] = []mailbridge.Attachment{{Name: "foto.jpg", Content: []byte{1, 2, 3}}}

	result, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcomes[OutcomeCreated])
	created := f.tickets[501]
	require.NotNil(t, created)
	assert.Equal(t, ticket.DefaultMailSubject, created.Title())
	assert.Equal(t, "Monitor piscando\nSala 3", created.Description())
	assert.Equal(t, vo.StatusOpen, created.Status())
	assert.Equal(t, vo.PriorityMedium, created.Priority())
	assert.Equal(t, "carlos@example.com", created.RequesterEmail())
	assert.Equal(t, received, created.CreatedAt())
	assert.Equal(t, received, created.UpdatedAt())
	require.Len(t, f.attachments, 1)
	assert.Equal(t, uint(501), f.attachments[0].TicketID())
	assert.Equal(t, []uint{501}, f.confirmed)
}

func TestIngest_FailedMessageStaysUnread(t *testing.T) {
	f := newFixture(t,
		mailbridge.Message{ID: "bad", Subject: "[#123]", Body: "x", SenderEmail: "a@example.com"},
		mailbridge.Message{ID: "good", Subject: "Teclado", Body: "falhando", SenderEmail: "b@example.com"},
	)
	f.uc.ticketRepo.(*mockTicketRepository).UpdateFunc = func(context.Context, *ticket.Ticket) error {
		return stderrors.New("lock wait timeout")
	}

	result, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcomes[OutcomeFailed])
	assert.Equal(t, 1, result.Outcomes[OutcomeCreated])
	assert.Equal(t, []string{"good"}, f.source.marked)
}

func TestIngest_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.source.fetchErr = stderrors.New("401")

	_, err := f.uc.Execute(context.Background())
	assert.Error(t, err)
}

func TestIngest_AttachmentFailureDoesNotFailMessage(t *testing.T) {
	f := newFixture(t, mailbridge.Message{ID: "m3", Subject: "Nobreak", Body: "apitando", SenderEmail: "c@example.com"})
	f.source.attachments["m3"] = []mailbridge.Attachment{{Name: "a.pdf", Content: []byte("x")}}
	f.uc.files = &mockFileStorage{
		SaveFunc: func(context.Context, string, io.Reader) (*storage.StoredFile, error) {
			return nil, storage.ErrFileTooLarge
		},
	}

	result, err := f.uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcomes[OutcomeCreated])
	assert.Empty(t, f.attachments)
	assert.Equal(t, []string{"m3"}, f.source.marked)
}
