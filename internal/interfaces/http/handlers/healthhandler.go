package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// Pinger checks a backing service.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, log logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: log}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db(ctx); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
