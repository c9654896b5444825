package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/ticket/usecases"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// DashboardHandler serves the ticket counters and the average resolution time.
type DashboardHandler struct {
	getDashboardUseCase usecases.GetDashboardExecutor
	logger              logger.Interface
}

func NewDashboardHandler(getDashboardUseCase usecases.GetDashboardExecutor, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUseCase: getDashboardUseCase,
		logger:              logger,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get dashboard", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
