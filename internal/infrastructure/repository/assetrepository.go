package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/mappers"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/db"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db, mapper: mappers.NewAssetMapper()}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AssetModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *AssetRepository) ExistsBySerial(ctx context.Context, serial string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("serial_number = ?", serial)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check serial number: %w", err)
	}
	return count > 0, nil
}

func (r *AssetRepository) List(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Scopes(db.WhereIfSet("status", filter.Status))

	if filter.AssetTypeID != 0 {
		query = query.Where("asset_type_id = ?", filter.AssetTypeID)
	}
	if filter.CostCenterID != 0 {
		query = query.Where("cost_center_id = ?", filter.CostCenterID)
	}
	if filter.DeviceUserID != 0 {
		query = query.Where("device_user_id = ?", filter.DeviceUserID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"serial_number LIKE ? OR hostname LIKE ? OR patrimony_number LIKE ? OR brand LIKE ? OR model LIKE ?",
			like, like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	var rows []models.AssetModel
	if err := query.
		Order("id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}

	out := make([]*asset.Asset, len(rows))
	for i := range rows {
		out[i] = r.mapper.ToDomain(&rows[i])
	}
	return out, total, nil
}

func (r *AssetRepository) SyncTypeName(ctx context.Context, assetTypeID uint, name string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("asset_type_id = ?", assetTypeID).
		Update("type_name", name)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sync asset type name: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AssetRepository) CountByType(ctx context.Context, assetTypeID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetModel{}).
		Where("asset_type_id = ?", assetTypeID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assets by type: %w", err)
	}
	return count, nil
}

type AssetTypeRepository struct {
	db *gorm.DB
}

func NewAssetTypeRepository(db *gorm.DB) *AssetTypeRepository {
	return &AssetTypeRepository{db: db}
}

func (r *AssetTypeRepository) Create(ctx context.Context, t *asset.AssetType) error {
	model := &models.AssetTypeModel{Name: t.Name()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create asset type: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *AssetTypeRepository) Update(ctx context.Context, t *asset.AssetType) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AssetTypeModel{}).
		Where("id = ?", t.ID()).
		Update("name", t.Name()).Error; err != nil {
		return fmt.Errorf("failed to update asset type: %w", err)
	}
	return nil
}

func (r *AssetTypeRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.AssetTypeModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete asset type: %w", err)
	}
	return nil
}

func (r *AssetTypeRepository) GetByID(ctx context.Context, id uint) (*asset.AssetType, error) {
	var model models.AssetTypeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset type: %w", err)
	}
	return mappers.AssetTypeToDomain(&model), nil
}

func (r *AssetTypeRepository) List(ctx context.Context) ([]*asset.AssetType, error) {
	var rows []models.AssetTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	out := make([]*asset.AssetType, len(rows))
	for i := range rows {
		out[i] = mappers.AssetTypeToDomain(&rows[i])
	}
	return out, nil
}

type CostCenterRepository struct {
	db *gorm.DB
}

func NewCostCenterRepository(db *gorm.DB) *CostCenterRepository {
	return &CostCenterRepository{db: db}
}

func (r *CostCenterRepository) Create(ctx context.Context, cc *asset.CostCenter) error {
	model := &models.CostCenterModel{Code: cc.Code(), Name: cc.Name(), CreatedAt: cc.CreatedAt()}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cost center: %w", err)
	}
	cc.SetID(model.ID)
	return nil
}

func (r *CostCenterRepository) Update(ctx context.Context, cc *asset.CostCenter) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CostCenterModel{}).
		Where("id = ?", cc.ID()).
		Updates(map[string]any{"code": cc.Code(), "name": cc.Name()}).Error; err != nil {
		return fmt.Errorf("failed to update cost center: %w", err)
	}
	return nil
}

func (r *CostCenterRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.CostCenterModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete cost center: %w", err)
	}
	return nil
}

func (r *CostCenterRepository) GetByID(ctx context.Context, id uint) (*asset.CostCenter, error) {
	var model models.CostCenterModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cost center: %w", err)
	}
	return mappers.CostCenterToDomain(&model), nil
}

func (r *CostCenterRepository) List(ctx context.Context) ([]*asset.CostCenter, error) {
	var rows []models.CostCenterModel
	if err := db.GetTxFromContext(ctx, r.db).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	out := make([]*asset.CostCenter, len(rows))
	for i := range rows {
		out[i] = mappers.CostCenterToDomain(&rows[i])
	}
	return out, nil
}

type DeviceUserRepository struct {
	db *gorm.DB
}

func NewDeviceUserRepository(db *gorm.DB) *DeviceUserRepository {
	return &DeviceUserRepository{db: db}
}

func (r *DeviceUserRepository) Create(ctx context.Context, u *asset.DeviceUser) error {
	model := mappers.DeviceUserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create device user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *DeviceUserRepository) Update(ctx context.Context, u *asset.DeviceUser) error {
	model := mappers.DeviceUserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeviceUserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update device user: %w", err)
	}
	return nil
}

func (r *DeviceUserRepository) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.DeviceUserModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete device user: %w", err)
	}
	return nil
}

func (r *DeviceUserRepository) GetByID(ctx context.Context, id uint) (*asset.DeviceUser, error) {
	var model models.DeviceUserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device user: %w", err)
	}
	return mappers.DeviceUserToDomain(&model), nil
}

func (r *DeviceUserRepository) List(ctx context.Context) ([]*asset.DeviceUser, error) {
	var rows []models.DeviceUserModel
	if err := db.GetTxFromContext(ctx, r.db).Order("first_name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list device users: %w", err)
	}
	out := make([]*asset.DeviceUser, len(rows))
	for i := range rows {
		out[i] = mappers.DeviceUserToDomain(&rows[i])
	}
	return out, nil
}
