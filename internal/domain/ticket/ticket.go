package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength = 200

	// DefaultMailSubject titles tickets opened from mails without a subject.
	DefaultMailSubject = "Sem Assunto"
)

type Ticket struct {
	id             uint
	title          string
	description    string
	status         vo.TicketStatus
	priority       vo.Priority
	requesterName  string
	requesterEmail string
	assignedTo     string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket opens a ticket in status Aberto. An empty priority falls back to
// the default.
func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	requesterName string,
	requesterEmail string,
	openedAt time.Time,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	openedAt = openedAt.UTC()
	return &Ticket{
		title:          title,
		description:    description,
		status:         vo.StatusOpen,
		priority:       priority,
		requesterName:  strings.TrimSpace(requesterName),
		requesterEmail: strings.TrimSpace(requesterEmail),
		createdAt:      openedAt,
		updatedAt:      openedAt,
	}, nil
}

// ReconstructTicket rebuilds a persisted ticket. createdAt may be zero for
// legacy rows.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	requesterName string,
	requesterEmail string,
	assignedTo string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:             id,
		title:          title,
		description:    description,
		status:         status,
		priority:       priority,
		requesterName:  requesterName,
		requesterEmail: requesterEmail,
		assignedTo:     assignedTo,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) RequesterName() string {
	return t.requesterName
}

func (t *Ticket) RequesterEmail() string {
	return t.requesterEmail
}

// RequesterDisplayName is the name used to greet the requester.
func (t *Ticket) RequesterDisplayName() string {
	if t.requesterName != "" {
		return t.requesterName
	}
	return t.requesterEmail
}

// AssignedTo is the assignee username, empty when unassigned.
func (t *Ticket) AssignedTo() string {
	return t.assignedTo
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateFields is a proposed edit. Every field is compared as submitted.
type UpdateFields struct {
	Status     vo.TicketStatus
	Priority   vo.Priority
	AssignedTo string
}

// ApplyUpdate compares fields with the current values, applies the ones
// that differ and returns one change per applied field in the order
// status, priority, assignee. updated_at advances only when something
// changed.
func (t *Ticket) ApplyUpdate(fields UpdateFields, at time.Time) (ChangeSet, error) {
	if !fields.Status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", fields.Status)
	}
	if !fields.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", fields.Priority)
	}
	assignee := strings.TrimSpace(fields.AssignedTo)

	var changes ChangeSet
	if fields.Status != t.status {
		changes = append(changes, Change{Field: FieldStatus, Old: t.status.String(), New: fields.Status.String()})
		t.status = fields.Status
	}
	if fields.Priority != t.priority {
		changes = append(changes, Change{Field: FieldPriority, Old: t.priority.String(), New: fields.Priority.String()})
		t.priority = fields.Priority
	}
	if assignee != t.assignedTo {
		changes = append(changes, Change{Field: FieldAssignee, Old: assigneeLabel(t.assignedTo), New: assigneeLabel(assignee)})
		t.assignedTo = assignee
	}

	if !changes.IsEmpty() {
		t.Touch(at)
	}
	return changes, nil
}

// Touch advances updated_at to at, never before created_at.
func (t *Ticket) Touch(at time.Time) {
	at = at.UTC()
	if !t.createdAt.IsZero() && at.Before(t.createdAt) {
		at = t.createdAt
	}
	t.updatedAt = at
}

// SLA computes the elapsed-time view at now.
func (t *Ticket) SLA(now time.Time, th Thresholds) SLAView {
	return ComputeSLA(t.createdAt, t.updatedAt, t.status, now, th)
}
