package stock

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/application/stock/usecases"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

type StockHandler struct {
	createUC  usecases.CreateItemExecutor
	updateUC  usecases.UpdateItemExecutor
	deleteUC  usecases.DeleteItemExecutor
	movements usecases.MovementRegistrar
	queries   usecases.StockQuerier
	logger    logger.Interface
}

func NewStockHandler(
	createUC usecases.CreateItemExecutor,
	updateUC usecases.UpdateItemExecutor,
	deleteUC usecases.DeleteItemExecutor,
	movements usecases.MovementRegistrar,
	queries usecases.StockQuerier,
	logger logger.Interface,
) *StockHandler {
	return &StockHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		movements: movements,
		queries:   queries,
		logger:    logger,
	}
}

// Overview handles GET /estoque
//
//	@Summary		Stock overview
//	@Description	Item totals per category, movement counts and the latest movements
//	@Tags			stock
//	@Produce		json
//	@Success		200	{object}	utils.APIResponse
//	@Router			/estoque [get]
func (h *StockHandler) Overview(c *gin.Context) {
	result, err := h.queries.Overview(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListItems handles GET /estoque/lista?categoria=&status=
func (h *StockHandler) ListItems(c *gin.Context) {
	result, err := h.queries.ListItems(c.Request.Context(), usecases.ListItemsQuery{
		Category: c.Query("categoria"),
		Status:   c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *StockHandler) History(c *gin.Context) {
	result, err := h.queries.History(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateItem handles POST /estoque
//
//	@Summary	Register a stock item
//	@Tags		stock
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateItemRequest	true	"Item"
//	@Success	201		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.APIResponse
//	@Router		/estoque [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create stock item", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateItemCommand{Request: req, User: user.Username})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Item registered successfully")
}

func (h *StockHandler) UpdateItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, err := utils.ParseIDParam(c, "id", "stock item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update stock item", "item_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateItemCommand{ID: id, Request: req, User: user.Username})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", result)
}

func (h *StockHandler) DeleteItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "stock item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// RegisterEntry handles POST /estoque/:id/entrada
func (h *StockHandler) RegisterEntry(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	id, err := utils.ParseIDParam(c, "id", "stock item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.movements.RegisterEntry(c.Request.Context(), usecases.EntryCommand{
		ItemID:   id,
		Quantity: req.Quantity,
		Notes:    req.Notes,
		User:     user.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Entry registered successfully")
}

// RegisterExit handles POST /estoque/saida
func (h *StockHandler) RegisterExit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req dto.ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.movements.RegisterExit(c.Request.Context(), usecases.ExitCommand{
		ItemID:      req.ItemID,
		Quantity:    req.Quantity,
		Responsible: req.Responsible,
		Notes:       req.Notes,
		User:        user.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Exit registered successfully")
}
