package mappers

import (
	"fmt"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket aggregates and their rows.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error)

	HistoryToModel(h *ticket.History) *models.TicketHistoryModel
	HistoryToDomain(m *models.TicketHistoryModel) *ticket.History
	CommentToModel(c *ticket.Comment) *models.TicketCommentModel
	CommentToDomain(m *models.TicketCommentModel) *ticket.Comment
	AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel
	AttachmentToDomain(m *models.TicketAttachmentModel) *ticket.Attachment
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.RequesterName,
		model.RequesterEmail,
		model.AssignedTo,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	out := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		t, err := m.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.History) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:                h.ID(),
		TicketID:          h.TicketID(),
		ChangedBy:         h.ChangedBy(),
		ChangeDescription: h.Description(),
		ChangedAt:         h.ChangedAt(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) *ticket.History {
	return ticket.ReconstructHistory(model.ID, model.TicketID, model.ChangedBy, model.ChangeDescription, model.ChangedAt)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:          c.ID(),
		TicketID:    c.TicketID(),
		Commenter:   c.Commenter(),
		Comment:     c.Text(),
		CommentedAt: c.CommentedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) *ticket.Comment {
	return ticket.ReconstructComment(model.ID, model.TicketID, model.Commenter, model.Comment, model.CommentedAt)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		Filename:   a.Filename(),
		Filepath:   a.Filepath(),
		UploadedAt: a.UploadedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.TicketAttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(model.ID, model.TicketID, model.Filename, model.Filepath, model.UploadedAt)
}
