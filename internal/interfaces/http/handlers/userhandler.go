package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/application/user/usecases"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// UserHandler serves the administrator's account management.
type UserHandler struct {
	userService UserService
	logger      logger.Interface
}

func NewUserHandler(userService UserService, log logger.Interface) *UserHandler {
	return &UserHandler{userService: userService, logger: log}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, user, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.userService.ListUsers(c.Request.Context(), usecases.ListUsersQuery{
		Role:     c.Query("profile"),
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// ToggleUserStatus handles POST /users/:id/toggle
func (h *UserHandler) ToggleUserStatus(c *gin.Context) {
	id, actor, ok := h.accountTarget(c)
	if !ok {
		return
	}

	user, err := h.userService.ToggleUserStatus(c.Request.Context(), id, actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "User deactivated"
	if user.IsActive {
		message = "User activated"
	}
	utils.SuccessResponse(c, http.StatusOK, message, user)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, actor, ok := h.accountTarget(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id, actor.UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *UserHandler) accountTarget(c *gin.Context) (uint, middleware.Principal, bool) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, middleware.Principal{}, false
	}
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return 0, middleware.Principal{}, false
	}
	return id, actor, true
}
