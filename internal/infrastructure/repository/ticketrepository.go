package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/mappers"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes every column so clearing the assignee persists.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when the values are unchanged.
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	query = query.Scopes(db.WhereIfSet("assigned_to", filter.AssignedTo))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order("id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListAssignedOpen(ctx context.Context, username string) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("assigned_to = ?", username).
		Where("status NOT IN ?", []string{vo.StatusClosed.String(), vo.StatusCancelled.String()}).
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}

	return r.mapper.ToDomainList(ticketModels)
}

func (r *TicketRepository) ListByStatus(ctx context.Context, status vo.TicketStatus) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status = ?", status.String()).
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by status: %w", err)
	}

	return r.mapper.ToDomainList(ticketModels)
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Total
	}
	return counts, nil
}

type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketHistoryRepository) Create(ctx context.Context, h *ticket.History) error {
	model := r.mapper.HistoryToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket history: %w", err)
	}
	h.SetID(model.ID)
	return nil
}

func (r *TicketHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.History, error) {
	var rows []models.TicketHistoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("changed_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket history: %w", err)
	}

	out := make([]*ticket.History, len(rows))
	for i := range rows {
		out[i] = r.mapper.HistoryToDomain(&rows[i])
	}
	return out, nil
}

type TicketCommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketCommentRepository(db *gorm.DB) *TicketCommentRepository {
	return &TicketCommentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *TicketCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var rows []models.TicketCommentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("commented_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make([]*ticket.Comment, len(rows))
	for i := range rows {
		out[i] = r.mapper.CommentToDomain(&rows[i])
	}
	return out, nil
}

func (r *TicketCommentRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketCommentModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return total, nil
}

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketAttachmentRepository(db *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *TicketAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *TicketAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var rows []models.TicketAttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("uploaded_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]*ticket.Attachment, len(rows))
	for i := range rows {
		out[i] = r.mapper.AttachmentToDomain(&rows[i])
	}
	return out, nil
}
