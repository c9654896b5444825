package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/application/asset/dto"
	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

func TestAssetTypeUseCase_Rename(t *testing.T) {
	t.Run("syncs copied name inside a transaction", func(t *testing.T) {
		types := newMemoryTypeRepository(notebookType())
		var syncedID uint
		var syncedName string
		assets := &mockAssetRepository{
			SyncTypeNameFunc: func(_ context.Context, id uint, name string) (int64, error) {
				syncedID, syncedName = id, name
				return 4, nil
			},
		}
		tx := &inlineTx{}
		uc := NewAssetTypeUseCase(types, assets, tx, logger.NewNop())

		result, err := uc.Rename(context.Background(), 2, dto.AssetTypeRequest{Name: "Laptop"})
		require.NoError(t, err)
		assert.Equal(t, "Laptop", result.Name)
		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, uint(2), syncedID)
		assert.Equal(t, "Laptop", syncedName)
	})

	t.Run("unchanged name skips the transaction", func(t *testing.T) {
		tx := &inlineTx{}
		uc := NewAssetTypeUseCase(newMemoryTypeRepository(notebookType()), &mockAssetRepository{}, tx, logger.NewNop())

		_, err := uc.Rename(context.Background(), 2, dto.AssetTypeRequest{Name: " Notebook "})
		require.NoError(t, err)
		assert.Zero(t, tx.calls)
	})

	t.Run("sync failure is internal", func(t *testing.T) {
		assets := &mockAssetRepository{
			SyncTypeNameFunc: func(context.Context, uint, string) (int64, error) { return 0, stderrors.New("lock timeout") },
		}
		uc := NewAssetTypeUseCase(newMemoryTypeRepository(notebookType()), assets, &inlineTx{}, logger.NewNop())

		_, err := uc.Rename(context.Background(), 2, dto.AssetTypeRequest{Name: "Laptop"})
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	})

	t.Run("name taken", func(t *testing.T) {
		types := newMemoryTypeRepository(notebookType())
		types.updateErr = stderrors.New("UNIQUE constraint failed: asset_types.name")
		uc := NewAssetTypeUseCase(types, &mockAssetRepository{}, &inlineTx{}, logger.NewNop())

		_, err := uc.Rename(context.Background(), 2, dto.AssetTypeRequest{Name: "Monitor"})
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestAssetTypeUseCase_Delete(t *testing.T) {
	t.Run("type in use", func(t *testing.T) {
		types := newMemoryTypeRepository(notebookType())
		assets := &mockAssetRepository{
			CountByTypeFunc: func(context.Context, uint) (int64, error) { return 2, nil },
		}
		uc := NewAssetTypeUseCase(types, assets, &inlineTx{}, logger.NewNop())

		err := uc.Delete(context.Background(), 2)
		assert.True(t, errors.IsConflictError(err))
		assert.Empty(t, types.deleted)
	})

	t.Run("unused type", func(t *testing.T) {
		types := newMemoryTypeRepository(notebookType())
		uc := NewAssetTypeUseCase(types, &mockAssetRepository{}, &inlineTx{}, logger.NewNop())

		require.NoError(t, uc.Delete(context.Background(), 2))
		assert.Equal(t, []uint{2}, types.deleted)
	})
}

func TestCostCenterUseCase(t *testing.T) {
	repo := &stubCostCenterRepository{}
	uc := NewCostCenterUseCase(repo, logger.NewNop())

	created, err := uc.Create(context.Background(), dto.CostCenterRequest{Code: " TI ", Name: "Tecnologia"})
	require.NoError(t, err)
	assert.Equal(t, "TI", created.Code)

	_, err = uc.Create(context.Background(), dto.CostCenterRequest{Code: "", Name: "Sem código"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Update(context.Background(), 99, dto.CostCenterRequest{Code: "X", Name: "Y"})
	assert.True(t, errors.IsNotFoundError(err))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeviceUserUseCase(t *testing.T) {
	repo := &stubDeviceUserRepository{}
	uc := NewDeviceUserUseCase(repo, logger.NewNop())

	created, err := uc.Create(context.Background(), dto.DeviceUserRequest{
		FirstName:    "Bruno",
		LastName:     "Alves",
		Email:        "bruno@example.com",
		CostCenterID: "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bruno Alves", created.FullName)
	assert.Nil(t, created.CostCenterID)

	_, err = uc.Create(context.Background(), dto.DeviceUserRequest{FirstName: "Sem Email"})
	assert.True(t, errors.IsValidationError(err))

	updated, err := uc.Update(context.Background(), created.ID, dto.DeviceUserRequest{
		FirstName:    "Bruno",
		Email:        "bruno.alves@example.com",
		Department:   "Financeiro",
		CostCenterID: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, "Financeiro", updated.Department)
	require.NotNil(t, updated.CostCenterID)
	assert.Equal(t, uint(4), *updated.CostCenterID)

	err = uc.Delete(context.Background(), 42)
	assert.True(t, errors.IsNotFoundError(err))

	var _ asset.DeviceUserRepository = repo
}
