package ticket

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/ticket/usecases"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	addAttachmentUC usecases.AddAttachmentExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	listMyTicketsUC usecases.ListMyTicketsExecutor
	downloadUC      usecases.DownloadAttachmentExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listMyTicketsUC usecases.ListMyTicketsExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		updateTicketUC:  updateTicketUC,
		addAttachmentUC: addAttachmentUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		listMyTicketsUC: listMyTicketsUC,
		downloadUC:      downloadUC,
		logger:          logger,
	}
}

// CreateTicket handles POST /tickets
//
//	@Summary	Open a ticket
//	@Tags		tickets
//	@Accept		json,mpfd
//	@Produce	json
//	@Success	201	{object}	utils.APIResponse
//	@Router		/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	upload, file, err := formFile(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	cmd := req.ToCommand()
	cmd.Upload = upload

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
//
//	@Summary	List tickets
//	@Tags		tickets
//	@Produce	json
//	@Param		status		query		string	false	"Status filter"
//	@Param		priority	query		string	false	"Priority filter"
//	@Param		assigned_to	query		string	false	"Assignee username"
//	@Param		page		query		int		false	"Page number"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	utils.APIResponse
//	@Router		/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// ListMyTickets handles GET /tickets/mine
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	tickets, err := h.listMyTicketsUC.Execute(c.Request.Context(), user.Username)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tickets)
}

// UpdateTicket handles POST /tickets/:id. A multipart request carrying a
// file only adds the attachment; the field update is skipped.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	upload, file, err := formFile(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if upload != nil {
		defer file.Close()
		h.addAttachment(c, ticketID, *upload)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		Status:     req.Status,
		Priority:   req.Priority,
		AssignedTo: req.AssignedTo,
		Comment:    req.Comment,
		Actor:      user.Username,
		ActorRole:  user.Role,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket updated successfully"
	if len(result.Changes) == 0 && result.Comment == nil {
		message = "No changes"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

func (h *TicketHandler) addAttachment(c *gin.Context, ticketID uint, upload usecases.Upload) {
	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		TicketID: ticketID,
		Upload:   upload,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// DownloadAttachment handles GET /uploads/:filename
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	filename := c.Param("filename")

	f, err := h.downloadUC.Execute(c.Request.Context(), filename)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Errorw("failed to stat attachment", "filename", filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to open file"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filepath.Base(filename)+`"`)
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
