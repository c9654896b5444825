// Package mailbridge turns inbound support mail into tickets and comments.
package mailbridge

import (
	"context"
	"time"
)

// Message is one unread inbound mail.
type Message struct {
	ID          string
	Subject     string
	Body        string
	BodyIsHTML  bool
	SenderName  string
	SenderEmail string
	// ReceivedAt is zero when the source did not report it.
	ReceivedAt time.Time
}

// Attachment is a file attached to a Message.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

// MailSource is the mailbox polled for new requests.
type MailSource interface {
	FetchUnreadMessages(ctx context.Context) ([]Message, error)
	FetchAttachments(ctx context.Context, messageID string) ([]Attachment, error)
	MarkRead(ctx context.Context, messageID string) error
}

// DisabledSource never returns messages.
type DisabledSource struct{}

func (DisabledSource) FetchUnreadMessages(context.Context) ([]Message, error) { return nil, nil }

func (DisabledSource) FetchAttachments(context.Context, string) ([]Attachment, error) {
	return nil, nil
}

func (DisabledSource) MarkRead(context.Context, string) error { return nil }
