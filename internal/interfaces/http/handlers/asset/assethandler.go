package asset

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/application/asset/usecases"
	"github.com/synerjet/bendesk/internal/shared/biztime"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AssetHandler struct {
	createUC usecases.CreateAssetExecutor
	updateUC usecases.UpdateAssetExecutor
	deleteUC usecases.DeleteAssetExecutor
	getUC    usecases.GetAssetExecutor
	listUC   usecases.ListAssetsExecutor
	exportUC usecases.ExportAssetsExecutor
	logger   logger.Interface
}

func NewAssetHandler(
	createUC usecases.CreateAssetExecutor,
	updateUC usecases.UpdateAssetExecutor,
	deleteUC usecases.DeleteAssetExecutor,
	getUC usecases.GetAssetExecutor,
	listUC usecases.ListAssetsExecutor,
	exportUC usecases.ExportAssetsExecutor,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		exportUC: exportUC,
		logger:   logger,
	}
}

// ListAssets handles GET /ativos
func (h *AssetHandler) ListAssets(c *gin.Context) {
	query := parseListQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Assets, result.Total, query.Page, query.PageSize)
}

// CreateAsset handles POST /ativos
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Asset registered successfully")
}

// GetAsset handles GET /ativos/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateAsset handles PUT /ativos/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update asset", "asset_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{ID: id, Request: req})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

// DeleteAsset handles DELETE /ativos/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
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

// ExportAssets handles GET /ativos/export. It honours the list filters and
// ignores paging.
func (h *AssetHandler) ExportAssets(c *gin.Context) {
	data, err := h.exportUC.Execute(c.Request.Context(), parseListQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "ativos_" + biztime.FormatInBizTimezone(biztime.NowUTC(), "20060102_1504") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func parseListQuery(c *gin.Context) usecases.ListAssetsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListAssetsQuery{
		AssetTypeID:  queryID(c, "asset_type_id"),
		Status:       c.Query("status"),
		CostCenterID: queryID(c, "cost_center_id"),
		DeviceUserID: queryID(c, "device_user_id"),
		Search:       c.Query("search"),
		Page:         p.Page,
		PageSize:     p.PageSize,
	}
}

func queryID(c *gin.Context, key string) uint {
	n, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
