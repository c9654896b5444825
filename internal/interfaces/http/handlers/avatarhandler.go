package handlers

import (
	stderrors "errors"
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/infrastructure/graph"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// AvatarHandler proxies directory photos so browsers never hold a Graph token.
type AvatarHandler struct {
	avatars AvatarSource
	logger  logger.Interface
}

func NewAvatarHandler(avatars AvatarSource, log logger.Interface) *AvatarHandler {
	return &AvatarHandler{avatars: avatars, logger: log}
}

// GetAvatar handles GET /avatar/:email. Missing photos and upstream
// failures answer 404 so the page falls back to initials.
func (h *AvatarHandler) GetAvatar(c *gin.Context) {
	email := c.Param("email")
	if _, err := mail.ParseAddress(email); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid email")
		return
	}

	data, contentType, err := h.avatars.Avatar(c.Request.Context(), email)
	if err != nil {
		if !stderrors.Is(err, graph.ErrPhotoNotFound) {
			h.logger.Warnw("failed to fetch avatar", "email", email, "error", err)
		}
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, contentType, data)
}
