package stock

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/application/stock/dto"
	"github.com/synerjet/bendesk/internal/application/stock/usecases"
	"github.com/synerjet/bendesk/internal/interfaces/http/handlers/testutil"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type mockCreateItemUC struct {
	got usecases.CreateItemCommand
	err error
}

func (m *mockCreateItemUC) Execute(_ context.Context, cmd usecases.CreateItemCommand) (*usecases.CreateItemResult, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &usecases.CreateItemResult{Item: dto.ItemDTO{ID: 1, Name: cmd.Request.Name}}, nil
}

type mockUpdateItemUC struct {
	got usecases.UpdateItemCommand
}

func (m *mockUpdateItemUC) Execute(_ context.Context, cmd usecases.UpdateItemCommand) (*dto.ItemDTO, error) {
	m.got = cmd
	return &dto.ItemDTO{ID: cmd.ID, Name: cmd.Request.Name}, nil
}

type mockDeleteItemUC struct {
	id uint
}

func (m *mockDeleteItemUC) Execute(_ context.Context, id uint) error {
	m.id = id
	return nil
}

type mockMovements struct {
	entry   usecases.EntryCommand
	exit    usecases.ExitCommand
	exitErr error
}

func (m *mockMovements) RegisterEntry(_ context.Context, cmd usecases.EntryCommand) (*usecases.MovementResult, error) {
	m.entry = cmd
	return &usecases.MovementResult{Movement: dto.MovementDTO{Type: "entrada", Quantity: cmd.Quantity}}, nil
}

func (m *mockMovements) RegisterExit(_ context.Context, cmd usecases.ExitCommand) (*usecases.MovementResult, error) {
	m.exit = cmd
	if m.exitErr != nil {
		return nil, m.exitErr
	}
	return &usecases.MovementResult{Movement: dto.MovementDTO{Type: "saida", Quantity: cmd.Quantity}}, nil
}

type mockQueries struct {
	listQuery usecases.ListItemsQuery
	listErr   error
}

func (m *mockQueries) ListItems(_ context.Context, q usecases.ListItemsQuery) (*usecases.ListItemsResult, error) {
	m.listQuery = q
	if m.listErr != nil {
		return nil, m.listErr
	}
	return &usecases.ListItemsResult{Items: []dto.ItemDTO{{ID: 1}}, Categories: []string{"Cabos"}}, nil
}

func (m *mockQueries) Categories(context.Context) ([]string, error) { return []string{"Cabos"}, nil }

func (m *mockQueries) Overview(context.Context) (*dto.OverviewDTO, error) {
	return &dto.OverviewDTO{TotalItems: 3, Entries: 2, Exits: 1}, nil
}

func (m *mockQueries) History(context.Context) ([]dto.MovementDTO, error) {
	return []dto.MovementDTO{{ID: 2}, {ID: 1}}, nil
}

type testDeps struct {
	create    *mockCreateItemUC
	update    *mockUpdateItemUC
	delete    *mockDeleteItemUC
	movements *mockMovements
	queries   *mockQueries
}

func newTestStockHandler() (*StockHandler, testDeps) {
	deps := testDeps{
		create:    &mockCreateItemUC{},
		update:    &mockUpdateItemUC{},
		delete:    &mockDeleteItemUC{},
		movements: &mockMovements{},
		queries:   &mockQueries{},
	}
	return NewStockHandler(deps.create, deps.update, deps.delete, deps.movements, deps.queries, logger.NewNop()), deps
}

func TestStockHandler_Overview(t *testing.T) {
	handler, _ := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/estoque", nil)
	handler.Overview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"total_itens":3`)
}

func TestStockHandler_ListItems(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		handler, deps := newTestStockHandler()

		c, w := testutil.NewTestContext(http.MethodGet, "/estoque/lista", nil)
		testutil.SetQueryParams(c, map[string]string{"categoria": "Cabos", "status": "Baixo Estoque"})
		handler.ListItems(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Cabos", deps.queries.listQuery.Category)
		assert.Equal(t, "Baixo Estoque", deps.queries.listQuery.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		handler, deps := newTestStockHandler()
		deps.queries.listErr = errors.NewValidationError("invalid stock status")

		c, w := testutil.NewTestContext(http.MethodGet, "/estoque/lista", nil)
		testutil.SetQueryParams(c, map[string]string{"status": "Quebrado"})
		handler.ListItems(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStockHandler_History(t *testing.T) {
	handler, _ := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/estoque/historico", nil)
	handler.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStockHandler_CreateItem(t *testing.T) {
	tests := []struct {
		name   string
		auth   bool
		body   interface{}
		status int
	}{
		{"created", true, dto.CreateItemRequest{Name: "Cabo HDMI", Category: "Cabos", Quantity: 4}, http.StatusCreated},
		{"negative quantity", true, dto.CreateItemRequest{Name: "Cabo HDMI", Quantity: -1}, http.StatusBadRequest},
		{"missing name", true, dto.CreateItemRequest{Quantity: 1}, http.StatusBadRequest},
		{"unauthenticated", false, dto.CreateItemRequest{Name: "Cabo HDMI"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestStockHandler()

			c, w := testutil.NewTestContext(http.MethodPost, "/estoque", tt.body)
			if tt.auth {
				testutil.SetAuthContext(c, 2, "joao", authorization.RoleSupport)
			}
			handler.CreateItem(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusCreated {
				assert.Equal(t, "joao", deps.create.got.User)
				assert.Equal(t, 4.0, deps.create.got.Request.Quantity)
			}
		})
	}
}

func TestStockHandler_UpdateItem(t *testing.T) {
	handler, deps := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodPut, "/estoque/3", dto.UpdateItemRequest{Name: "Mouse", Quantity: 10})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 2, "joao", authorization.RoleSupport)
	handler.UpdateItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), deps.update.got.ID)
	assert.Equal(t, "joao", deps.update.got.User)
}

func TestStockHandler_DeleteItem(t *testing.T) {
	handler, deps := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/estoque/3", nil)
	testutil.SetURLParam(c, "id", "3")
	handler.DeleteItem(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(3), deps.delete.id)
}

func TestStockHandler_RegisterEntry(t *testing.T) {
	handler, deps := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/estoque/5/entrada", dto.EntryRequest{Quantity: 2.5, Notes: "Compra"})
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 2, "joao", authorization.RoleSupport)
	handler.RegisterEntry(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), deps.movements.entry.ItemID)
	assert.Equal(t, 2.5, deps.movements.entry.Quantity)
	assert.Equal(t, "joao", deps.movements.entry.User)
}

func TestStockHandler_RegisterEntry_ZeroQuantity(t *testing.T) {
	handler, _ := newTestStockHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/estoque/5/entrada", dto.EntryRequest{})
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 2, "joao", authorization.RoleSupport)
	handler.RegisterEntry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStockHandler_RegisterExit(t *testing.T) {
	tests := []struct {
		name    string
		body    dto.ExitRequest
		ucErr   error
		status  int
		checkUC bool
	}{
		{"registered", dto.ExitRequest{ItemID: 5, Quantity: 1, Responsible: "Maria"}, nil, http.StatusCreated, true},
		{"missing responsible", dto.ExitRequest{ItemID: 5, Quantity: 1}, nil, http.StatusBadRequest, false},
		{"insufficient", dto.ExitRequest{ItemID: 5, Quantity: 99, Responsible: "Maria"},
			errors.NewValidationError("Quantidade insuficiente em estoque."), http.StatusBadRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestStockHandler()
			deps.movements.exitErr = tt.ucErr

			c, w := testutil.NewTestContext(http.MethodPost, "/estoque/saida", tt.body)
			testutil.SetAuthContext(c, 2, "joao", authorization.RoleSupport)
			handler.RegisterExit(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.checkUC {
				assert.Equal(t, "Maria", deps.movements.exit.Responsible)
				assert.Equal(t, "joao", deps.movements.exit.User)
			}
		})
	}
}
