package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

func stockedItem(id uint, name, category string, qty float64) *stock.Item {
	th := stock.DefaultThresholds()
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return stock.ReconstructItem(id, stock.ItemFields{Name: name, Category: category, Unit: "un", Quantity: qty}, th.StatusFor(qty), th, ts, ts)
}

func newMovementUseCase(items *memoryItemRepository, moves *memoryMovementRepository) *MovementUseCase {
	return NewMovementUseCase(items, moves, &inlineTx{}, logger.NewNop())
}

func TestRegisterExit_InsufficientStock(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Cabo HDMI", "Cabos", 5))
	moves := &memoryMovementRepository{}
	uc := newMovementUseCase(items, moves)

	_, err := uc.RegisterExit(context.Background(), ExitCommand{ItemID: 1, Quantity: 6, Responsible: "Ana"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "Quantidade insuficiente em estoque.", appErr.Message)
	assert.Equal(t, 5.0, items.items[1].Quantity())
	assert.Zero(t, items.updates)
	assert.Empty(t, moves.movements)
}

func TestRegisterExit_WritesSaida(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Cabo HDMI", "Cabos", 8))
	moves := &memoryMovementRepository{}
	uc := newMovementUseCase(items, moves)

	result, err := uc.RegisterExit(context.Background(), ExitCommand{
		ItemID:      1,
		Quantity:    3,
		Responsible: "Carlos",
		Notes:       "Sala de reunião",
		User:        "suporte1",
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.Item.Quantity)
	assert.Equal(t, string(stock.StatusLow), result.Item.Status)
	require.Len(t, moves.movements, 1)
	mv := moves.movements[0]
	assert.Equal(t, stock.MovementOut, mv.Type())
	assert.Equal(t, "Sala de reunião (Responsável: Carlos)", mv.Description())
	assert.Equal(t, "suporte1", mv.User())
	assert.Equal(t, "Cabo HDMI", result.Movement.ItemName)
}

func TestRegisterEntry_RecomputesStatus(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Toner", "Impressão", 0))
	moves := &memoryMovementRepository{}
	uc := newMovementUseCase(items, moves)

	steps := []struct {
		qty        float64
		wantQty    float64
		wantStatus stock.Status
	}{
		{qty: 3, wantQty: 3, wantStatus: stock.StatusLow},
		{qty: 10, wantQty: 13, wantStatus: stock.StatusAvailable},
	}
	for _, step := range steps {
		result, err := uc.RegisterEntry(context.Background(), EntryCommand{ItemID: 1, Quantity: step.qty, User: "admin"})
		require.NoError(t, err)
		assert.Equal(t, step.wantQty, result.Item.Quantity)
		assert.Equal(t, string(step.wantStatus), result.Item.Status)
		assert.Equal(t, stock.DefaultEntryDescription, result.Movement.Description)
	}
	assert.Len(t, moves.movements, 2)
}

type trackingTx struct {
	inside bool
}

func (tx *trackingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.inside = true
	defer func() { tx.inside = false }()
	return fn(ctx)
}

// lockCheckingItemRepository fails a locked read made outside a transaction.
type lockCheckingItemRepository struct {
	*memoryItemRepository
	tx *trackingTx
}

func (r *lockCheckingItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*stock.Item, error) {
	if !r.tx.inside {
		return nil, stderrors.New("row lock outside transaction")
	}
	return r.memoryItemRepository.GetByIDForUpdate(ctx, id)
}

func TestRegisterMovement_ReadsItemUnderLockInTransaction(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Cabo de rede", "Cabos", 10))
	moves := &memoryMovementRepository{}
	tx := &trackingTx{}
	uc := NewMovementUseCase(&lockCheckingItemRepository{memoryItemRepository: items, tx: tx}, moves, tx, logger.NewNop())

	_, err := uc.RegisterExit(context.Background(), ExitCommand{ItemID: 1, Quantity: 4, Responsible: "Ana"})
	require.NoError(t, err)
	_, err = uc.RegisterEntry(context.Background(), EntryCommand{ItemID: 1, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, items.lockedReads)
	assert.Equal(t, 8.0, items.items[1].Quantity())
	assert.Len(t, moves.movements, 2)
}

func TestRegisterMovement_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		run   func(uc *MovementUseCase) error
		check func(err error) bool
	}{
		{
			name: "zero entry",
			run: func(uc *MovementUseCase) error {
				_, err := uc.RegisterEntry(context.Background(), EntryCommand{ItemID: 1, Quantity: 0})
				return err
			},
			check: errors.IsValidationError,
		},
		{
			name: "negative exit",
			run: func(uc *MovementUseCase) error {
				_, err := uc.RegisterExit(context.Background(), ExitCommand{ItemID: 1, Quantity: -1})
				return err
			},
			check: errors.IsValidationError,
		},
		{
			name: "unknown item",
			run: func(uc *MovementUseCase) error {
				_, err := uc.RegisterEntry(context.Background(), EntryCommand{ItemID: 9, Quantity: 1})
				return err
			},
			check: errors.IsNotFoundError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newMemoryItemRepository(stockedItem(1, "Mouse", "", 2))
			moves := &memoryMovementRepository{}
			err := tt.run(newMovementUseCase(items, moves))
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Empty(t, moves.movements)
		})
	}
}

func TestRegisterEntry_PersistenceFailure(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Mouse", "", 2))
	moves := &memoryMovementRepository{createErr: stderrors.New("disk full")}
	uc := newMovementUseCase(items, moves)

	_, err := uc.RegisterEntry(context.Background(), EntryCommand{ItemID: 1, Quantity: 1})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestCreateItemUseCase(t *testing.T) {
	t.Run("initial quantity writes an entrada", func(t *testing.T) {
		items := newMemoryItemRepository()
		moves := &memoryMovementRepository{}
		tx := &inlineTx{}
		uc := NewCreateItemUseCase(items, moves, tx, stock.DefaultThresholds(), logger.NewNop())

		result, err := uc.Execute(context.Background(), CreateItemCommand{
			Request: dto.CreateItemRequest{Name: "Teclado", Category: "Periféricos", NewCategory: " Entrada USB ", Quantity: 12},
			User:    "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, "Entrada USB", result.Item.Category)
		assert.Equal(t, string(stock.StatusAvailable), result.Item.Status)
		require.NotNil(t, result.Movement)
		assert.Equal(t, "entrada", result.Movement.Type)
		assert.Equal(t, "Entrada de material", result.Movement.Description)
		assert.Equal(t, result.Item.ID, result.Movement.ItemID)
	})

	t.Run("zero quantity writes no movement", func(t *testing.T) {
		moves := &memoryMovementRepository{}
		uc := NewCreateItemUseCase(newMemoryItemRepository(), moves, &inlineTx{}, stock.DefaultThresholds(), logger.NewNop())

		result, err := uc.Execute(context.Background(), CreateItemCommand{Request: dto.CreateItemRequest{Name: "Mousepad"}})
		require.NoError(t, err)
		assert.Nil(t, result.Movement)
		assert.Equal(t, string(stock.StatusReserved), result.Item.Status)
		assert.Empty(t, moves.movements)
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewCreateItemUseCase(newMemoryItemRepository(), &memoryMovementRepository{}, &inlineTx{}, stock.DefaultThresholds(), logger.NewNop())

		_, err := uc.Execute(context.Background(), CreateItemCommand{Request: dto.CreateItemRequest{Name: " "}})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateItemUseCase_RecordsDelta(t *testing.T) {
	tests := []struct {
		name     string
		newQty   float64
		wantKind stock.MovementType
		wantQty  float64
		wantRows int
	}{
		{name: "increase", newQty: 9, wantKind: stock.MovementIn, wantQty: 4, wantRows: 1},
		{name: "decrease", newQty: 2, wantKind: stock.MovementOut, wantQty: 3, wantRows: 1},
		{name: "unchanged", newQty: 5, wantRows: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newMemoryItemRepository(stockedItem(1, "Cabo", "Cabos", 5))
			moves := &memoryMovementRepository{}
			uc := NewUpdateItemUseCase(items, moves, &inlineTx{}, logger.NewNop())

			result, err := uc.Execute(context.Background(), UpdateItemCommand{
				ID:      1,
				Request: dto.UpdateItemRequest{Name: "Cabo de rede", Category: "Cabos", Unit: "un", Quantity: tt.newQty},
				User:    "admin",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.newQty, result.Quantity)
			assert.Equal(t, "Cabo de rede", result.Name)
			require.Len(t, moves.movements, tt.wantRows)
			if tt.wantRows == 1 {
				assert.Equal(t, tt.wantKind, moves.movements[0].Type())
				assert.Equal(t, tt.wantQty, moves.movements[0].Quantity())
				assert.Equal(t, ManualAdjustmentDescription, moves.movements[0].Description())
			}
		})
	}
}

func TestDeleteItemUseCase(t *testing.T) {
	items := newMemoryItemRepository(stockedItem(1, "Cabo", "Cabos", 5), stockedItem(2, "Mouse", "", 1))
	moves := &memoryMovementRepository{}
	for _, id := range []uint{1, 2, 1} {
		mv, err := stock.NewMovement(stock.MovementIn, id, 1, "x", "admin")
		require.NoError(t, err)
		require.NoError(t, moves.Create(context.Background(), mv))
	}
	uc := NewDeleteItemUseCase(items, moves, &inlineTx{}, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), 1))
	assert.NotContains(t, items.items, uint(1))
	require.Len(t, moves.movements, 1)
	assert.Equal(t, uint(2), moves.movements[0].ItemID())

	assert.True(t, errors.IsNotFoundError(uc.Execute(context.Background(), 1)))
}

func TestStockQueryUseCase(t *testing.T) {
	items := newMemoryItemRepository(
		stockedItem(1, "Cabo", "Cabos", 5),
		stockedItem(2, "Adaptador", "Cabos", 20),
		stockedItem(3, "Mouse", "", 0),
	)
	moves := &memoryMovementRepository{}
	for i := 0; i < 25; i++ {
		kind := stock.MovementIn
		if i%5 == 0 {
			kind = stock.MovementOut
		}
		mv, err := stock.NewMovement(kind, 1, 1, "x", "admin")
		require.NoError(t, err)
		require.NoError(t, moves.Create(context.Background(), mv))
	}
	uc := NewStockQueryUseCase(items, moves, logger.NewNop())

	t.Run("overview", func(t *testing.T) {
		overview, err := uc.Overview(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, overview.TotalItems)
		assert.Equal(t, []dto.CategoryCount{{Category: "Cabos", Items: 2}, {Category: stock.NoCategory, Items: 1}}, overview.Categories)
		assert.Equal(t, int64(20), overview.Entries)
		assert.Equal(t, int64(5), overview.Exits)
		require.Len(t, overview.RecentMovements, RecentMovementsLimit)
		assert.Equal(t, uint(25), overview.RecentMovements[0].ID)
	})

	t.Run("history returns everything", func(t *testing.T) {
		history, err := uc.History(context.Background())
		require.NoError(t, err)
		assert.Len(t, history, 25)
	})

	t.Run("list filters by status", func(t *testing.T) {
		result, err := uc.ListItems(context.Background(), ListItemsQuery{Status: string(stock.StatusLow)})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Cabo", result.Items[0].Name)
		assert.Equal(t, []string{"Cabos"}, result.Categories)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		_, err := uc.ListItems(context.Background(), ListItemsQuery{Status: "Esgotado"})
		assert.True(t, errors.IsValidationError(err))
	})
}
