package asset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/application/asset/usecases"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// DirectoryHandler serves the lookup tables assets link to: cost centers,
// device types and device users.
type DirectoryHandler struct {
	costCenters usecases.CostCenterManager
	assetTypes  usecases.AssetTypeManager
	deviceUsers usecases.DeviceUserManager
	logger      logger.Interface
}

func NewDirectoryHandler(
	costCenters usecases.CostCenterManager,
	assetTypes usecases.AssetTypeManager,
	deviceUsers usecases.DeviceUserManager,
	logger logger.Interface,
) *DirectoryHandler {
	return &DirectoryHandler{
		costCenters: costCenters,
		assetTypes:  assetTypes,
		deviceUsers: deviceUsers,
		logger:      logger,
	}
}

func (h *DirectoryHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

// ListCostCenters handles GET /ativos/centros-de-custo
//
//	@Summary	List cost centers
//	@Tags		assets
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse
//	@Router		/ativos/centros-de-custo [get]
func (h *DirectoryHandler) ListCostCenters(c *gin.Context) {
	result, err := h.costCenters.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DirectoryHandler) CreateCostCenter(c *gin.Context) {
	var req dto.CostCenterRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.costCenters.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Cost center created successfully")
}

func (h *DirectoryHandler) UpdateCostCenter(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "cost center")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.CostCenterRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.costCenters.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cost center updated successfully", result)
}

func (h *DirectoryHandler) DeleteCostCenter(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "cost center")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.costCenters.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *DirectoryHandler) ListAssetTypes(c *gin.Context) {
	result, err := h.assetTypes.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DirectoryHandler) CreateAssetType(c *gin.Context) {
	var req dto.AssetTypeRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.assetTypes.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Device type created successfully")
}

// RenameAssetType handles PUT /ativos/tipos-dispositivo/:id
func (h *DirectoryHandler) RenameAssetType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "device type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.AssetTypeRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.assetTypes.Rename(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device type renamed successfully", result)
}

func (h *DirectoryHandler) DeleteAssetType(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "device type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.assetTypes.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *DirectoryHandler) ListDeviceUsers(c *gin.Context) {
	result, err := h.deviceUsers.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DirectoryHandler) CreateDeviceUser(c *gin.Context) {
	var req dto.DeviceUserRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.deviceUsers.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Device user created successfully")
}

func (h *DirectoryHandler) UpdateDeviceUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "device user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.DeviceUserRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.deviceUsers.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device user updated successfully", result)
}

func (h *DirectoryHandler) DeleteDeviceUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "device user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.deviceUsers.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
