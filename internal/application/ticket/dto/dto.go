package dto

import (
	"time"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/domain/user"
)

type SLADTO struct {
	Elapsed string  `json:"elapsed"`
	Tier    string  `json:"tier"`
	Color   string  `json:"color"`
	Hours   float64 `json:"hours"`
}

type TicketDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	AssignedTo     string    `json:"assigned_to"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	SLA            SLADTO    `json:"sla"`
}

type HistoryDTO struct {
	ID          uint      `json:"id"`
	ChangedBy   string    `json:"changed_by"`
	Description string    `json:"change_description"`
	ChangedAt   time.Time `json:"changed_at"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	Commenter   string    `json:"commenter"`
	Comment     string    `json:"comment"`
	CommentedAt time.Time `json:"commented_at"`
}

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type AssigneeDTO struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// TicketDetailDTO is the full view of one ticket.
type TicketDetailDTO struct {
	Ticket      TicketDTO       `json:"ticket"`
	History     []HistoryDTO    `json:"history"`
	Comments    []CommentDTO    `json:"comments"`
	Attachments []AttachmentDTO `json:"attachments"`
	Assignees   []AssigneeDTO   `json:"assignees"`
}

type DashboardDTO struct {
	Open              int64  `json:"open"`
	InProgress        int64  `json:"in_progress"`
	Closed            int64  `json:"closed"`
	Cancelled         int64  `json:"cancelled"`
	AverageResolution string `json:"average_resolution"`
}

// AttachmentURLPrefix is the download route of stored attachments.
const AttachmentURLPrefix = "/uploads/"

func ToSLADTO(v ticket.SLAView) SLADTO {
	return SLADTO{
		Elapsed: v.Label,
		Tier:    string(v.Tier),
		Color:   v.Tier.Color(),
		Hours:   v.Elapsed.Hours(),
	}
}

func ToTicketDTO(t *ticket.Ticket, now time.Time, th ticket.Thresholds) TicketDTO {
	return TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		RequesterName:  t.RequesterName(),
		RequesterEmail: t.RequesterEmail(),
		AssignedTo:     t.AssignedTo(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
		SLA:            ToSLADTO(t.SLA(now, th)),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket, now time.Time, th ticket.Thresholds) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t, now, th))
	}
	return out
}

func ToHistoryDTOList(items []*ticket.History) []HistoryDTO {
	out := make([]HistoryDTO, 0, len(items))
	for _, h := range items {
		out = append(out, HistoryDTO{
			ID:          h.ID(),
			ChangedBy:   h.ChangedBy(),
			Description: h.Description(),
			ChangedAt:   h.ChangedAt(),
		})
	}
	return out
}

func ToCommentDTOList(items []*ticket.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(items))
	for _, c := range items {
		out = append(out, ToCommentDTO(c))
	}
	return out
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		Commenter:   c.Commenter(),
		Comment:     c.Text(),
		CommentedAt: c.CommentedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         a.ID(),
		Filename:   a.Filename(),
		URL:        AttachmentURLPrefix + a.Filename(),
		UploadedAt: a.UploadedAt(),
	}
}

func ToAttachmentDTOList(items []*ticket.Attachment) []AttachmentDTO {
	out := make([]AttachmentDTO, 0, len(items))
	for _, a := range items {
		out = append(out, ToAttachmentDTO(a))
	}
	return out
}

func ToAssigneeDTOList(users []*user.User) []AssigneeDTO {
	out := make([]AssigneeDTO, 0, len(users))
	for _, u := range users {
		out = append(out, AssigneeDTO{
			Username:    u.Username(),
			DisplayName: u.DisplayName(),
			Role:        u.Role().String(),
		})
	}
	return out
}
