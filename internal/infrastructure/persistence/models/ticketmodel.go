package models

import "time"

// Timestamps are owned by the domain. Auto create/update is disabled so mail
// ingestion can store the received time.
type TicketModel struct {
	ID             uint      `gorm:"primaryKey"`
	Title          string    `gorm:"size:200;not null"`
	Description    string    `gorm:"type:text;not null"`
	Status         string    `gorm:"size:20;not null;default:Aberto;index"`
	Priority       string    `gorm:"size:20;not null;default:Média;index"`
	RequesterName  string    `gorm:"size:100"`
	RequesterEmail string    `gorm:"size:100"`
	AssignedTo     string    `gorm:"size:100;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketHistoryModel struct {
	ID                uint      `gorm:"primaryKey"`
	TicketID          uint      `gorm:"not null;index"`
	ChangedBy         string    `gorm:"size:100"`
	ChangeDescription string    `gorm:"type:text"`
	ChangedAt         time.Time `gorm:"not null"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}

type TicketCommentModel struct {
	ID          uint      `gorm:"primaryKey"`
	TicketID    uint      `gorm:"not null;index"`
	Commenter   string    `gorm:"size:100"`
	Comment     string    `gorm:"type:text;not null"`
	CommentedAt time.Time `gorm:"not null"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}

type TicketAttachmentModel struct {
	ID         uint      `gorm:"primaryKey"`
	TicketID   uint      `gorm:"not null;index"`
	Filename   string    `gorm:"size:255"`
	Filepath   string    `gorm:"size:255"`
	UploadedAt time.Time `gorm:"not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
