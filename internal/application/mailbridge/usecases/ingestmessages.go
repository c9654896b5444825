package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/application/mailbridge"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/infrastructure/storage"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// EmptyMailBody is the description of tickets opened from mails without text.
const EmptyMailBody = "(e-mail sem conteúdo)"

const (
	maxSubjectRunes = 200
	unknownSender   = "Remetente desconhecido"
)

type Notifier interface {
	TicketReceived(ctx context.Context, t *ticket.Ticket) error
}

type FileStorage interface {
	Save(ctx context.Context, name string, r io.Reader) (*storage.StoredFile, error)
}

// HTMLStripper reduces an HTML body to text.
type HTMLStripper interface {
	StripHTML(htmlContent string) string
}

// Outcome is what ingestion did with one message.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeCommented Outcome = "commented"
	OutcomeIgnored   Outcome = "ignored"
	OutcomeFailed    Outcome = "failed"
)

type IngestResult struct {
	Fetched  int
	Outcomes map[Outcome]int
}

func (r *IngestResult) record(o Outcome) {
	r.Outcomes[o]++
}

// IngestMessagesUseCase polls the mailbox once and turns every unread
// message into a new ticket or a comment on an existing one.
type IngestMessagesUseCase struct {
	source         mailbridge.MailSource
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	files          FileStorage
	notifier       Notifier
	stripper       HTMLStripper
	txManager      db.Transactor
	now            func() time.Time
	logger         logger.Interface
}

func NewIngestMessagesUseCase(
	source mailbridge.MailSource,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	files FileStorage,
	notifier Notifier,
	stripper HTMLStripper,
	txManager db.Transactor,
	logger logger.Interface,
) *IngestMessagesUseCase {
	return &IngestMessagesUseCase{
		source:         source,
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		files:          files,
		notifier:       notifier,
		stripper:       stripper,
		txManager:      txManager,
		now:            time.Now,
		logger:         logger,
	}
}

// Execute fails only when the mailbox cannot be listed. A message whose
// processing fails stays unread and is retried on the next run.
func (uc *IngestMessagesUseCase) Execute(ctx context.Context) (*IngestResult, error) {
	messages, err := uc.source.FetchUnreadMessages(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch unread messages", "error", err)
		return nil, err
	}

	result := &IngestResult{Fetched: len(messages), Outcomes: map[Outcome]int{}}
	for _, msg := range messages {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		outcome, err := uc.process(ctx, msg)
		if err != nil {
			uc.logger.Errorw("failed to process message", "message_id", msg.ID, "subject", msg.Subject, "error", err)
			result.record(OutcomeFailed)
			continue
		}

		if err := uc.source.MarkRead(ctx, msg.ID); err != nil {
			uc.logger.Errorw("failed to mark message read", "message_id", msg.ID, "error", err)
		}
		result.record(outcome)
	}

	if len(messages) > 0 {
		uc.logger.Infow("mailbox processed",
			"fetched", result.Fetched,
			"created", result.Outcomes[OutcomeCreated],
			"commented", result.Outcomes[OutcomeCommented],
			"ignored", result.Outcomes[OutcomeIgnored],
			"failed", result.Outcomes[OutcomeFailed],
		)
	}
	return result, nil
}

func (uc *IngestMessagesUseCase) process(ctx context.Context, msg mailbridge.Message) (Outcome, error) {
	received := msg.ReceivedAt
	if received.IsZero() {
		received = uc.now()
	}
	body := msg.Body
	if msg.BodyIsHTML {
		body = uc.stripper.StripHTML(body)
	}

	if id, found := mailbridge.TicketRef(msg.Subject); found {
		if id == 0 {
			uc.logger.Warnw("reply references an invalid ticket number", "subject", msg.Subject, "message_id", msg.ID)
			return OutcomeIgnored, nil
		}
		return uc.appendReply(ctx, id, msg, body, received)
	}
	return uc.openTicket(ctx, msg, body, received)
}

func (uc *IngestMessagesUseCase) appendReply(ctx context.Context, ticketID uint, msg mailbridge.Message, body string, received time.Time) (Outcome, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return "", fmt.Errorf("failed to load ticket %d: %w", ticketID, err)
	}
	if t == nil {
		uc.logger.Warnw("reply references an unknown ticket", "ticket_id", ticketID, "message_id", msg.ID)
		return OutcomeIgnored, nil
	}

	text := mailbridge.CleanReply(body)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if text != "" {
			c, err := ticket.NewComment(t.ID(), senderLabel(msg), text, received)
			if err != nil {
				return err
			}
			if err := uc.commentRepo.Create(txCtx, c); err != nil {
				return err
			}
		}
		t.Touch(received)
		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		return "", fmt.Errorf("failed to append reply to ticket %d: %w", t.ID(), err)
	}

	uc.saveAttachments(ctx, t.ID(), msg.ID, received)
	uc.logger.Infow("reply added to ticket", "ticket_id", t.ID(), "message_id", msg.ID, "has_text", text != "")
	return OutcomeCommented, nil
}

func (uc *IngestMessagesUseCase) openTicket(ctx context.Context, msg mailbridge.Message, body string, received time.Time) (Outcome, error) {
	title := truncateRunes(strings.TrimSpace(msg.Subject), maxSubjectRunes)
	if title == "" {
		title = ticket.DefaultMailSubject
	}
	description := strings.TrimSpace(body)
	if description == "" {
		description = EmptyMailBody
	}

	t, err := ticket.NewTicket(title, description, "", msg.SenderName, msg.SenderEmail, received)
	if err != nil {
		return "", fmt.Errorf("invalid ticket from message: %w", err)
	}
	if err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	}); err != nil {
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.saveAttachments(ctx, t.ID(), msg.ID, received)

	if err := uc.notifier.TicketReceived(ctx, t); err != nil {
		uc.logger.Warnw("failed to send ticket confirmation", "ticket_id", t.ID(), "error", err)
	}
	uc.logger.Infow("ticket opened from email", "ticket_id", t.ID(), "message_id", msg.ID, "sender", msg.SenderEmail)
	return OutcomeCreated, nil
}

// saveAttachments logs failures and never fails the message.
func (uc *IngestMessagesUseCase) saveAttachments(ctx context.Context, ticketID uint, messageID string, at time.Time) {
	atts, err := uc.source.FetchAttachments(ctx, messageID)
	if err != nil {
		uc.logger.Warnw("failed to fetch attachments", "message_id", messageID, "error", err)
		return
	}
	for _, a := range atts {
		stored, err := uc.files.Save(ctx, a.Name, bytes.NewReader(a.Content))
		if err != nil {
			uc.logger.Warnw("failed to store attachment", "ticket_id", ticketID, "name", a.Name, "error", err)
			continue
		}
		att, err := ticket.NewAttachment(ticketID, stored.Filename, stored.Path, at)
		if err != nil {
			uc.logger.Warnw("invalid attachment", "ticket_id", ticketID, "name", a.Name, "error", err)
			continue
		}
		if err := uc.attachmentRepo.Create(ctx, att); err != nil {
			uc.logger.Warnw("failed to record attachment", "ticket_id", ticketID, "name", a.Name, "error", err)
		}
	}
}

func senderLabel(msg mailbridge.Message) string {
	if name := strings.TrimSpace(msg.SenderName); name != "" {
		return name
	}
	if email := strings.TrimSpace(msg.SenderEmail); email != "" {
		return email
	}
	return unknownSender
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
