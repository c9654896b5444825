package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/user/dto"
	"github.com/synerjet/bendesk/internal/interfaces/http/middleware"
	"github.com/synerjet/bendesk/internal/shared/config"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

type AuthHandler struct {
	userService UserService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewAuthHandler(userService UserService, jwtConfig config.JWTConfig, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

// Login handles POST /auth/login
//
//	@Summary		Sign in
//	@Description	Verifies the credentials and sets the session cookie. The token is also returned in the body.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Username and password"
//	@Success		200			{object}	utils.APIResponse	"Login successful"
//	@Failure		401			{object}	utils.APIResponse	"Invalid credentials"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("username and password are required"))
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.IsSecurityEvent(err) {
			h.logger.Warnw("security event", "event", "login_failed", "client_ip", c.ClientIP())
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.jwtConfig.CookieName, result.Token, h.jwtConfig.AccessExpMinutes*60, h.jwtConfig.CookieSecure)
	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookie(c, h.jwtConfig.CookieName, h.jwtConfig.CookieSecure)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

// GetCurrentUser handles GET /auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), principal.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", user)
}
