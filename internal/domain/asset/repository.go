package asset

import "context"

// Lookups return (nil, nil) when the row does not exist.
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Asset, error)
	// ExistsBySerial ignores excludeID when it is zero.
	ExistsBySerial(ctx context.Context, serial string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Asset, int64, error)
	// SyncTypeName rewrites the copied type name on every asset of the type.
	SyncTypeName(ctx context.Context, assetTypeID uint, name string) (int64, error)
	CountByType(ctx context.Context, assetTypeID uint) (int64, error)
}

type ListFilter struct {
	AssetTypeID  uint
	Status       string
	CostCenterID uint
	DeviceUserID uint
	Search       string
	Page         int
	PageSize     int
}

type AssetTypeRepository interface {
	Create(ctx context.Context, t *AssetType) error
	Update(ctx context.Context, t *AssetType) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*AssetType, error)
	// List returns newest first.
	List(ctx context.Context) ([]*AssetType, error)
}

type CostCenterRepository interface {
	Create(ctx context.Context, cc *CostCenter) error
	Update(ctx context.Context, cc *CostCenter) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*CostCenter, error)
	// List returns the most recently created first.
	List(ctx context.Context) ([]*CostCenter, error)
}

type DeviceUserRepository interface {
	Create(ctx context.Context, u *DeviceUser) error
	Update(ctx context.Context, u *DeviceUser) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*DeviceUser, error)
	// List returns users ordered by first name.
	List(ctx context.Context) ([]*DeviceUser, error)
}
