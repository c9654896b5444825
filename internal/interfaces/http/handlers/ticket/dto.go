package ticket

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/ticket/usecases"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// CreateTicketRequest is accepted as JSON or as multipart form fields.
type CreateTicketRequest struct {
	Title          string `json:"title" form:"title" binding:"required,max=200"`
	Description    string `json:"description" form:"description" binding:"required"`
	Priority       string `json:"priority" form:"priority"`
	RequesterName  string `json:"requester_name" form:"requester_name" binding:"max=100"`
	RequesterEmail string `json:"requester_email" form:"requester_email" binding:"omitempty,email"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:          strings.TrimSpace(r.Title),
		Description:    r.Description,
		Priority:       r.Priority,
		RequesterName:  strings.TrimSpace(r.RequesterName),
		RequesterEmail: strings.TrimSpace(r.RequesterEmail),
	}
}

// UpdateTicketRequest carries the full desired state of the editable
// fields plus an optional comment.
type UpdateTicketRequest struct {
	Status     string `json:"status" form:"status" binding:"required"`
	Priority   string `json:"priority" form:"priority" binding:"required"`
	AssignedTo string `json:"assigned_to" form:"assigned_to"`
	Comment    string `json:"comment" form:"comment"`
}

type ListTicketsRequest struct {
	Status     string
	Priority   string
	AssignedTo string
	Page       int
	PageSize   int
}

func parseListTicketsRequest(c *gin.Context) ListTicketsRequest {
	p := utils.ParsePagination(c)
	return ListTicketsRequest{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssignedTo: c.Query("assigned_to"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

func (r ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:     r.Status,
		Priority:   r.Priority,
		AssignedTo: r.AssignedTo,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseIDParam(c, "id", "ticket")
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formFile returns the "file" part of a multipart request, or nil when the
// request has none. The caller closes the returned file.
func formFile(c *gin.Context) (*usecases.Upload, multipart.File, error) {
	if !isMultipart(c) {
		return nil, nil, nil
	}
	header, err := c.FormFile("file")
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, errors.NewBadRequestError("invalid file upload", err.Error())
	}
	if header.Filename == "" {
		return nil, nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, errors.NewBadRequestError("invalid file upload", err.Error())
	}
	return &usecases.Upload{Filename: header.Filename, Content: f}, f, nil
}
