package ticket

import (
	"fmt"
	"time"
)

// Attachment references a stored file. The content lives in file storage.
type Attachment struct {
	id         uint
	ticketID   uint
	filename   string
	filepath   string
	uploadedAt time.Time
}

func NewAttachment(ticketID uint, filename, path string, at time.Time) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if filename == "" || path == "" {
		return nil, fmt.Errorf("filename and path are required")
	}
	return &Attachment{
		ticketID:   ticketID,
		filename:   filename,
		filepath:   path,
		uploadedAt: at.UTC(),
	}, nil
}

func ReconstructAttachment(id, ticketID uint, filename, path string, uploadedAt time.Time) *Attachment {
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		filename:   filename,
		filepath:   path,
		uploadedAt: uploadedAt,
	}
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) TicketID() uint        { return a.ticketID }
func (a *Attachment) Filename() string      { return a.filename }
func (a *Attachment) Filepath() string      { return a.filepath }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) SetID(id uint) {
	a.id = id
}
