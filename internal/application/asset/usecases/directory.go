package usecases

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/shared/db"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// CostCenterUseCase groups the cost center directory operations.
type CostCenterUseCase struct {
	repo   asset.CostCenterRepository
	logger logger.Interface
}

func NewCostCenterUseCase(repo asset.CostCenterRepository, logger logger.Interface) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo, logger: logger}
}

func (uc *CostCenterUseCase) List(ctx context.Context) ([]dto.CostCenterDTO, error) {
	centers, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list cost centers", "error", err)
		return nil, errors.NewInternalError("failed to list cost centers")
	}
	out := make([]dto.CostCenterDTO, 0, len(centers))
	for _, c := range centers {
		out = append(out, dto.ToCostCenterDTO(c))
	}
	return out, nil
}

func (uc *CostCenterUseCase) Create(ctx context.Context, req dto.CostCenterRequest) (*dto.CostCenterDTO, error) {
	cc, err := asset.NewCostCenter(req.Code, req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, cc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("cost center code already exists", cc.Code())
		}
		uc.logger.Errorw("failed to create cost center", "code", cc.Code(), "error", err)
		return nil, errors.NewInternalError("failed to create cost center")
	}
	uc.logger.Infow("cost center created", "cost_center_id", cc.ID(), "code", cc.Code())
	result := dto.ToCostCenterDTO(cc)
	return &result, nil
}

func (uc *CostCenterUseCase) Update(ctx context.Context, id uint, req dto.CostCenterRequest) (*dto.CostCenterDTO, error) {
	cc, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cc.Update(req.Code, req.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Update(ctx, cc); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("cost center code already exists", cc.Code())
		}
		uc.logger.Errorw("failed to update cost center", "cost_center_id", id, "error", err)
		return nil, errors.NewInternalError("failed to update cost center")
	}
	result := dto.ToCostCenterDTO(cc)
	return &result, nil
}

func (uc *CostCenterUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete cost center", "cost_center_id", id, "error", err)
		return errors.NewInternalError("failed to delete cost center")
	}
	uc.logger.Infow("cost center deleted", "cost_center_id", id)
	return nil
}

func (uc *CostCenterUseCase) get(ctx context.Context, id uint) (*asset.CostCenter, error) {
	cc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get cost center", "cost_center_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load cost center")
	}
	if cc == nil {
		return nil, errors.NewNotFoundError("cost center not found")
	}
	return cc, nil
}

// AssetTypeUseCase manages device types. Renaming a type rewrites the
// copied name on its assets in the same transaction.
type AssetTypeUseCase struct {
	repo      asset.AssetTypeRepository
	assetRepo asset.Repository
	txManager db.Transactor
	logger    logger.Interface
}

func NewAssetTypeUseCase(repo asset.AssetTypeRepository, assetRepo asset.Repository, txManager db.Transactor, logger logger.Interface) *AssetTypeUseCase {
	return &AssetTypeUseCase{repo: repo, assetRepo: assetRepo, txManager: txManager, logger: logger}
}

func (uc *AssetTypeUseCase) List(ctx context.Context) ([]dto.AssetTypeDTO, error) {
	types, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list asset types", "error", err)
		return nil, errors.NewInternalError("failed to list asset types")
	}
	out := make([]dto.AssetTypeDTO, 0, len(types))
	for _, t := range types {
		out = append(out, dto.ToAssetTypeDTO(t))
	}
	return out, nil
}

func (uc *AssetTypeUseCase) Create(ctx context.Context, req dto.AssetTypeRequest) (*dto.AssetTypeDTO, error) {
	t, err := asset.NewAssetType(req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("asset type already exists", t.Name())
		}
		uc.logger.Errorw("failed to create asset type", "name", t.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create asset type")
	}
	uc.logger.Infow("asset type created", "asset_type_id", t.ID(), "name", t.Name())
	result := dto.ToAssetTypeDTO(t)
	return &result, nil
}

// Rename changes the type name and resynchronizes the assets that copy it.
func (uc *AssetTypeUseCase) Rename(ctx context.Context, id uint, req dto.AssetTypeRequest) (*dto.AssetTypeDTO, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	changed, err := t.Rename(req.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		result := dto.ToAssetTypeDTO(t)
		return &result, nil
	}

	var synced int64
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Update(txCtx, t); err != nil {
			return err
		}
		n, err := uc.assetRepo.SyncTypeName(txCtx, t.ID(), t.Name())
		synced = n
		return err
	})
	if err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("asset type already exists", t.Name())
		}
		uc.logger.Errorw("failed to rename asset type", "asset_type_id", id, "error", err)
		return nil, errors.NewInternalError("failed to update asset type")
	}

	uc.logger.Infow("asset type renamed", "asset_type_id", id, "name", t.Name(), "assets_synced", synced)
	result := dto.ToAssetTypeDTO(t)
	return &result, nil
}

// Delete refuses to remove a type that still has assets.
func (uc *AssetTypeUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	inUse, err := uc.assetRepo.CountByType(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count assets of type", "asset_type_id", id, "error", err)
		return errors.NewInternalError("failed to delete asset type")
	}
	if inUse > 0 {
		return errors.NewConflictError("asset type is in use")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete asset type", "asset_type_id", id, "error", err)
		return errors.NewInternalError("failed to delete asset type")
	}
	uc.logger.Infow("asset type deleted", "asset_type_id", id)
	return nil
}

func (uc *AssetTypeUseCase) get(ctx context.Context, id uint) (*asset.AssetType, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get asset type", "asset_type_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load asset type")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("asset type not found")
	}
	return t, nil
}

type DeviceUserUseCase struct {
	repo   asset.DeviceUserRepository
	logger logger.Interface
}

func NewDeviceUserUseCase(repo asset.DeviceUserRepository, logger logger.Interface) *DeviceUserUseCase {
	return &DeviceUserUseCase{repo: repo, logger: logger}
}

func (uc *DeviceUserUseCase) List(ctx context.Context) ([]dto.DeviceUserDTO, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list device users", "error", err)
		return nil, errors.NewInternalError("failed to list device users")
	}
	out := make([]dto.DeviceUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToDeviceUserDTO(u))
	}
	return out, nil
}

func (uc *DeviceUserUseCase) Create(ctx context.Context, req dto.DeviceUserRequest) (*dto.DeviceUserDTO, error) {
	u, err := asset.NewDeviceUser(deviceUserFields(req))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create device user", "email", u.Email(), "error", err)
		return nil, errors.NewInternalError("failed to create device user")
	}
	uc.logger.Infow("device user created", "device_user_id", u.ID())
	result := dto.ToDeviceUserDTO(u)
	return &result, nil
}

func (uc *DeviceUserUseCase) Update(ctx context.Context, id uint, req dto.DeviceUserRequest) (*dto.DeviceUserDTO, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.Update(deviceUserFields(req)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update device user", "device_user_id", id, "error", err)
		return nil, errors.NewInternalError("failed to update device user")
	}
	result := dto.ToDeviceUserDTO(u)
	return &result, nil
}

func (uc *DeviceUserUseCase) Delete(ctx context.Context, id uint) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete device user", "device_user_id", id, "error", err)
		return errors.NewInternalError("failed to delete device user")
	}
	uc.logger.Infow("device user deleted", "device_user_id", id)
	return nil
}

func (uc *DeviceUserUseCase) get(ctx context.Context, id uint) (*asset.DeviceUser, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get device user", "device_user_id", id, "error", err)
		return nil, errors.NewInternalError("failed to load device user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("device user not found")
	}
	return u, nil
}

func deviceUserFields(req dto.DeviceUserRequest) asset.DeviceUserFields {
	return asset.DeviceUserFields{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Department:   req.Department,
		CostCenterID: ParseOptionalID(req.CostCenterID),
	}
}
