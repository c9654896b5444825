package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment is an append-only note on a ticket.
type Comment struct {
	id          uint
	ticketID    uint
	commenter   string
	text        string
	commentedAt time.Time
}

// NewComment trims text and rejects it when nothing is left.
func NewComment(ticketID uint, commenter, text string, at time.Time) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if strings.TrimSpace(commenter) == "" {
		return nil, fmt.Errorf("commenter is required")
	}

	return &Comment{
		ticketID:    ticketID,
		commenter:   commenter,
		text:        text,
		commentedAt: at.UTC(),
	}, nil
}

func ReconstructComment(id, ticketID uint, commenter, text string, commentedAt time.Time) *Comment {
	return &Comment{
		id:          id,
		ticketID:    ticketID,
		commenter:   commenter,
		text:        text,
		commentedAt: commentedAt,
	}
}

func (c *Comment) ID() uint               { return c.id }
func (c *Comment) TicketID() uint         { return c.ticketID }
func (c *Comment) Commenter() string      { return c.commenter }
func (c *Comment) Text() string           { return c.text }
func (c *Comment) CommentedAt() time.Time { return c.commentedAt }

func (c *Comment) SetID(id uint) {
	c.id = id
}
