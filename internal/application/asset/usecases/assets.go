package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

const duplicateSerialMessage = "serial number already registered"

// Exporter renders an asset listing as a spreadsheet.
type Exporter interface {
	ExportAssets(assets []dto.AssetDTO) ([]byte, error)
}

// CreateAssetUseCase registers a device. The pre-check on the serial number
// is a fast path; the unique index decides races.
type CreateAssetUseCase struct {
	assetRepo asset.Repository
	typeRepo  asset.AssetTypeRepository
	logger    logger.Interface
}

func NewCreateAssetUseCase(assetRepo asset.Repository, typeRepo asset.AssetTypeRepository, logger logger.Interface) *CreateAssetUseCase {
	return &CreateAssetUseCase{assetRepo: assetRepo, typeRepo: typeRepo, logger: logger}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, req dto.AssetRequest) (*dto.AssetDTO, error) {
	serial := strings.TrimSpace(req.SerialNumber)
	if req.AssetTypeID == 0 || serial == "" {
		return nil, errors.NewValidationError("asset type and serial number are required")
	}

	exists, err := uc.assetRepo.ExistsBySerial(ctx, serial, 0)
	if err != nil {
		uc.logger.Errorw("failed to check serial number", "serial", serial, "error", err)
		return nil, errors.NewInternalError("failed to register asset")
	}
	if exists {
		return nil, errors.NewConflictError(duplicateSerialMessage, serial)
	}

	assetType, err := resolveType(ctx, uc.typeRepo, req.AssetTypeID, uc.logger)
	if err != nil {
		return nil, err
	}
	details, err := detailsFromRequest(req)
	if err != nil {
		return nil, err
	}

	a, err := asset.NewAsset(assetType, serial, details)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a.Link(ParseOptionalID(req.CostCenterID), ParseOptionalID(req.DeviceUserID))

	if err := uc.assetRepo.Create(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(duplicateSerialMessage, serial)
		}
		uc.logger.Errorw("failed to create asset", "serial", serial, "error", err)
		return nil, errors.NewInternalError("failed to register asset")
	}

	uc.logger.Infow("asset registered", "asset_id", a.ID(), "type", a.TypeName())
	result := dto.ToAssetDTO(a, dto.Names{})
	return &result, nil
}

type UpdateAssetCommand struct {
	ID      uint
	Request dto.AssetRequest
}

type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	typeRepo  asset.AssetTypeRepository
	logger    logger.Interface
}

func NewUpdateAssetUseCase(assetRepo asset.Repository, typeRepo asset.AssetTypeRepository, logger logger.Interface) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{assetRepo: assetRepo, typeRepo: typeRepo, logger: logger}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error) {
	req := cmd.Request
	serial := strings.TrimSpace(req.SerialNumber)
	if req.AssetTypeID == 0 || serial == "" {
		return nil, errors.NewValidationError("asset type and serial number are required")
	}

	a, err := loadAsset(ctx, uc.assetRepo, cmd.ID, uc.logger)
	if err != nil {
		return nil, err
	}

	exists, err := uc.assetRepo.ExistsBySerial(ctx, serial, a.ID())
	if err != nil {
		uc.logger.Errorw("failed to check serial number", "serial", serial, "error", err)
		return nil, errors.NewInternalError("failed to update asset")
	}
	if exists {
		return nil, errors.NewConflictError(duplicateSerialMessage, serial)
	}

	if req.AssetTypeID != a.AssetTypeID() {
		assetType, err := resolveType(ctx, uc.typeRepo, req.AssetTypeID, uc.logger)
		if err != nil {
			return nil, err
		}
		if err := a.SetType(assetType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	details, err := detailsFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := a.ChangeSerialNumber(serial); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	a.UpdateDetails(details)
	a.Link(ParseOptionalID(req.CostCenterID), ParseOptionalID(req.DeviceUserID))

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(duplicateSerialMessage, serial)
		}
		uc.logger.Errorw("failed to update asset", "asset_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update asset")
	}

	uc.logger.Infow("asset updated", "asset_id", a.ID())
	result := dto.ToAssetDTO(a, dto.Names{})
	return &result, nil
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assetRepo: assetRepo, logger: logger}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := loadAsset(ctx, uc.assetRepo, id, uc.logger); err != nil {
		return err
	}
	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete asset", "asset_id", id, "error", err)
		return errors.NewInternalError("failed to delete asset")
	}
	uc.logger.Infow("asset deleted", "asset_id", id)
	return nil
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	names     *nameResolver
	logger    logger.Interface
}

func NewGetAssetUseCase(
	assetRepo asset.Repository,
	costCenterRepo asset.CostCenterRepository,
	deviceUserRepo asset.DeviceUserRepository,
	logger logger.Interface,
) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		names:     &nameResolver{costCenters: costCenterRepo, deviceUsers: deviceUserRepo},
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, id uint) (*dto.AssetDTO, error) {
	a, err := loadAsset(ctx, uc.assetRepo, id, uc.logger)
	if err != nil {
		return nil, err
	}
	names, err := uc.names.resolve(ctx)
	if err != nil {
		uc.logger.Errorw("failed to resolve asset links", "error", err)
		return nil, errors.NewInternalError("failed to load asset")
	}
	result := dto.ToAssetDTO(a, names)
	return &result, nil
}

type ListAssetsQuery struct {
	AssetTypeID  uint
	Status       string
	CostCenterID uint
	DeviceUserID uint
	Search       string
	Page         int
	PageSize     int
}

type ListAssetsResult struct {
	Assets []dto.AssetDTO
	Total  int64
}

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	names     *nameResolver
	logger    logger.Interface
}

func NewListAssetsUseCase(
	assetRepo asset.Repository,
	costCenterRepo asset.CostCenterRepository,
	deviceUserRepo asset.DeviceUserRepository,
	logger logger.Interface,
) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		names:     &nameResolver{costCenters: costCenterRepo, deviceUsers: deviceUserRepo},
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error) {
	assets, total, err := uc.assetRepo.List(ctx, asset.ListFilter{
		AssetTypeID:  query.AssetTypeID,
		Status:       strings.TrimSpace(query.Status),
		CostCenterID: query.CostCenterID,
		DeviceUserID: query.DeviceUserID,
		Search:       strings.TrimSpace(query.Search),
		Page:         query.Page,
		PageSize:     query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, errors.NewInternalError("failed to list assets")
	}
	names, err := uc.names.resolve(ctx)
	if err != nil {
		uc.logger.Errorw("failed to resolve asset links", "error", err)
		return nil, errors.NewInternalError("failed to list assets")
	}
	return &ListAssetsResult{Assets: dto.ToAssetDTOList(assets, names), Total: total}, nil
}

// ExportAssetsUseCase renders every asset matching the query, ignoring
// pagination.
type ExportAssetsUseCase struct {
	list     *ListAssetsUseCase
	exporter Exporter
	logger   logger.Interface
}

func NewExportAssetsUseCase(list *ListAssetsUseCase, exporter Exporter, logger logger.Interface) *ExportAssetsUseCase {
	return &ExportAssetsUseCase{list: list, exporter: exporter, logger: logger}
}

func (uc *ExportAssetsUseCase) Execute(ctx context.Context, query ListAssetsQuery) ([]byte, error) {
	query.Page, query.PageSize = 0, 0
	result, err := uc.list.Execute(ctx, query)
	if err != nil {
		return nil, err
	}
	data, err := uc.exporter.ExportAssets(result.Assets)
	if err != nil {
		uc.logger.Errorw("failed to export assets", "count", len(result.Assets), "error", err)
		return nil, errors.NewInternalError("failed to export assets")
	}
	uc.logger.Infow("assets exported", "count", len(result.Assets))
	return data, nil
}

// ParseOptionalID returns nil unless s is a positive integer.
func ParseOptionalID(s string) *uint {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}

func parseDate(field, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, errors.NewValidationError("invalid date", field)
	}
	return &t, nil
}

func detailsFromRequest(req dto.AssetRequest) (asset.Details, error) {
	acquired, err := parseDate("acquisition_date", req.AcquisitionDate)
	if err != nil {
		return asset.Details{}, err
	}
	returned, err := parseDate("return_date", req.ReturnDate)
	if err != nil {
		return asset.Details{}, err
	}
	return asset.Details{
		Brand:           req.Brand,
		Model:           req.Model,
		Hostname:        req.Hostname,
		InvoiceNumber:   req.InvoiceNumber,
		PatrimonyNumber: req.PatrimonyNumber,
		Status:          req.Status,
		Ownership:       req.Ownership,
		Location:        req.Location,
		Notes:           req.Notes,
		AcquisitionDate: acquired,
		ReturnDate:      returned,
	}, nil
}

func resolveType(ctx context.Context, repo asset.AssetTypeRepository, id uint, log logger.Interface) (*asset.AssetType, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get asset type", "asset_type_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load asset type")
	}
	if t == nil {
		return nil, errors.NewValidationError("asset type not found")
	}
	return t, nil
}

func loadAsset(ctx context.Context, repo asset.Repository, id uint, log logger.Interface) (*asset.Asset, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get asset", "asset_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load asset")
	}
	if a == nil {
		return nil, errors.NewNotFoundError("asset not found")
	}
	return a, nil
}

type nameResolver struct {
	costCenters asset.CostCenterRepository
	deviceUsers asset.DeviceUserRepository
}

func (r *nameResolver) resolve(ctx context.Context) (dto.Names, error) {
	centers, err := r.costCenters.List(ctx)
	if err != nil {
		return dto.Names{}, err
	}
	users, err := r.deviceUsers.List(ctx)
	if err != nil {
		return dto.Names{}, err
	}
	names := dto.Names{
		CostCenters: make(map[uint]string, len(centers)),
		DeviceUsers: make(map[uint]string, len(users)),
	}
	for _, c := range centers {
		names.CostCenters[c.ID()] = c.Name()
	}
	for _, u := range users {
		names.DeviceUsers[u.ID()] = u.FullName()
	}
	return names, nil
}
