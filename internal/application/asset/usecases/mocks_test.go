package usecases

import (
	"context"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/domain/asset"
)

type mockAssetRepository struct {
	CreateFunc         func(ctx context.Context, a *asset.Asset) error
	UpdateFunc         func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc        func(ctx context.Context, id uint) (*asset.Asset, error)
	ExistsBySerialFunc func(ctx context.Context, serial string, excludeID uint) (bool, error)
	ListFunc           func(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, int64, error)
	SyncTypeNameFunc   func(ctx context.Context, assetTypeID uint, name string) (int64, error)
	CountByTypeFunc    func(ctx context.Context, assetTypeID uint) (int64, error)
	created            []*asset.Asset
	deleted            []uint
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	m.created = append(m.created, a)
	return a.SetID(uint(len(m.created)))
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) ExistsBySerial(ctx context.Context, serial string, excludeID uint) (bool, error) {
	if m.ExistsBySerialFunc != nil {
		return m.ExistsBySerialFunc(ctx, serial, excludeID)
	}
	return false, nil
}

func (m *mockAssetRepository) List(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssetRepository) SyncTypeName(ctx context.Context, assetTypeID uint, name string) (int64, error) {
	if m.SyncTypeNameFunc != nil {
		return m.SyncTypeNameFunc(ctx, assetTypeID, name)
	}
	return 0, nil
}

func (m *mockAssetRepository) CountByType(ctx context.Context, assetTypeID uint) (int64, error) {
	if m.CountByTypeFunc != nil {
		return m.CountByTypeFunc(ctx, assetTypeID)
	}
	return 0, nil
}

// memoryTypeRepository keeps asset types in a map.
type memoryTypeRepository struct {
	types     map[uint]*asset.AssetType
	updateErr error
	deleted   []uint
}

func newMemoryTypeRepository(types ...*asset.AssetType) *memoryTypeRepository {
	r := &memoryTypeRepository{types: map[uint]*asset.AssetType{}}
	for _, t := range types {
		r.types[t.ID()] = t
	}
	return r
}

func (r *memoryTypeRepository) Create(_ context.Context, t *asset.AssetType) error {
	t.SetID(uint(len(r.types) + 1))
	r.types[t.ID()] = t
	return nil
}

func (r *memoryTypeRepository) Update(_ context.Context, t *asset.AssetType) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.types[t.ID()] = t
	return nil
}

func (r *memoryTypeRepository) Delete(_ context.Context, id uint) error {
	r.deleted = append(r.deleted, id)
	delete(r.types, id)
	return nil
}

func (r *memoryTypeRepository) GetByID(_ context.Context, id uint) (*asset.AssetType, error) {
	return r.types[id], nil
}

func (r *memoryTypeRepository) List(context.Context) ([]*asset.AssetType, error) {
	out := make([]*asset.AssetType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

type stubCostCenterRepository struct {
	centers []*asset.CostCenter
}

func (r *stubCostCenterRepository) Create(_ context.Context, cc *asset.CostCenter) error {
	cc.SetID(uint(len(r.centers) + 1))
	r.centers = append(r.centers, cc)
	return nil
}

func (r *stubCostCenterRepository) Update(context.Context, *asset.CostCenter) error { return nil }
func (r *stubCostCenterRepository) Delete(context.Context, uint) error              { return nil }

func (r *stubCostCenterRepository) GetByID(_ context.Context, id uint) (*asset.CostCenter, error) {
	for _, c := range r.centers {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCostCenterRepository) List(context.Context) ([]*asset.CostCenter, error) {
	return r.centers, nil
}

type stubDeviceUserRepository struct {
	users []*asset.DeviceUser
}

func (r *stubDeviceUserRepository) Create(_ context.Context, u *asset.DeviceUser) error {
	u.SetID(uint(len(r.users) + 1))
	r.users = append(r.users, u)
	return nil
}

func (r *stubDeviceUserRepository) Update(context.Context, *asset.DeviceUser) error { return nil }
func (r *stubDeviceUserRepository) Delete(context.Context, uint) error              { return nil }

func (r *stubDeviceUserRepository) GetByID(_ context.Context, id uint) (*asset.DeviceUser, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubDeviceUserRepository) List(context.Context) ([]*asset.DeviceUser, error) {
	return r.users, nil
}

type recordingExporter struct {
	rows []dto.AssetDTO
	err  error
}

func (e *recordingExporter) ExportAssets(rows []dto.AssetDTO) ([]byte, error) {
	e.rows = rows
	if e.err != nil {
		return nil, e.err
	}
	return []byte("xlsx"), nil
}

type inlineTx struct {
	calls int
}

func (tx *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}
