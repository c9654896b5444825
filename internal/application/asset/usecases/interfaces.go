package usecases

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
)

type CreateAssetExecutor interface {
	Execute(ctx context.Context, req dto.AssetRequest) (*dto.AssetDTO, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) (*dto.AssetDTO, error)
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.AssetDTO, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}

type ExportAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) ([]byte, error)
}

type CostCenterManager interface {
	List(ctx context.Context) ([]dto.CostCenterDTO, error)
	Create(ctx context.Context, req dto.CostCenterRequest) (*dto.CostCenterDTO, error)
	Update(ctx context.Context, id uint, req dto.CostCenterRequest) (*dto.CostCenterDTO, error)
	Delete(ctx context.Context, id uint) error
}

type AssetTypeManager interface {
	List(ctx context.Context) ([]dto.AssetTypeDTO, error)
	Create(ctx context.Context, req dto.AssetTypeRequest) (*dto.AssetTypeDTO, error)
	Rename(ctx context.Context, id uint, req dto.AssetTypeRequest) (*dto.AssetTypeDTO, error)
	Delete(ctx context.Context, id uint) error
}

type DeviceUserManager interface {
	List(ctx context.Context) ([]dto.DeviceUserDTO, error)
	Create(ctx context.Context, req dto.DeviceUserRequest) (*dto.DeviceUserDTO, error)
	Update(ctx context.Context, id uint, req dto.DeviceUserRequest) (*dto.DeviceUserDTO, error)
	Delete(ctx context.Context, id uint) error
}
