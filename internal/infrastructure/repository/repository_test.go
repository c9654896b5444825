package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/synerjet/bendesk/internal/domain/asset"
	"github.com/synerjet/bendesk/internal/domain/stock"
	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/domain/user"
	"github.com/synerjet/bendesk/internal/infrastructure/persistence/models"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/db"
	apperrors "github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func createTestTicket(t *testing.T, repo *TicketRepository, title string, at time.Time) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "Descrição do chamado", vo.PriorityMedium, "Ana", "ana@example.com", at)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	opened := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tk := createTestTicket(t, repo, "Impressora parada", opened)
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Impressora parada", found.Title())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.True(t, found.CreatedAt().Equal(opened), "received time must be stored as given")

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_UpdateClearsAssignee(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	tk := createTestTicket(t, repo, "VPN", time.Now().UTC())

	_, err := tk.ApplyUpdate(ticket.UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityHigh, AssignedTo: "joao"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, tk))

	_, err = tk.ApplyUpdate(ticket.UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityHigh, AssignedTo: ""}, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "", found.AssignedTo())
	assert.Equal(t, vo.PriorityHigh, found.Priority())
}

func TestTicketRepository_ListAndCounts(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	a := createTestTicket(t, repo, "A", now)
	b := createTestTicket(t, repo, "B", now)
	c := createTestTicket(t, repo, "C", now)

	_, err := b.ApplyUpdate(ticket.UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityMedium, AssignedTo: "maria"}, now)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))
	_, err = c.ApplyUpdate(ticket.UpdateFields{Status: vo.StatusClosed, Priority: vo.PriorityMedium, AssignedTo: "maria"}, now)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, c))

	t.Run("list is ordered by id", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tickets, 3)
		assert.Equal(t, a.ID(), tickets[0].ID())
		assert.Equal(t, c.ID(), tickets[2].ID())
	})

	t.Run("list filters by status", func(t *testing.T) {
		status := vo.StatusOpen
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, a.ID(), tickets[0].ID())
	})

	t.Run("list paginates", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, c.ID(), tickets[0].ID())
	})

	t.Run("assigned open excludes terminal tickets", func(t *testing.T) {
		tickets, err := repo.ListAssignedOpen(ctx, "maria")
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, b.ID(), tickets[0].ID())
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[vo.StatusOpen])
		assert.Equal(t, int64(1), counts[vo.StatusInProgress])
		assert.Equal(t, int64(1), counts[vo.StatusClosed])
		assert.Zero(t, counts[vo.StatusCancelled])
	})

	t.Run("list by status", func(t *testing.T) {
		closed, err := repo.ListByStatus(ctx, vo.StatusClosed)
		require.NoError(t, err)
		require.Len(t, closed, 1)
		assert.Equal(t, c.ID(), closed[0].ID())
	})
}

func TestTicketChildRepositories_NewestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	tickets := NewTicketRepository(gdb)
	comments := NewTicketCommentRepository(gdb)
	history := NewTicketHistoryRepository(gdb)
	attachments := NewTicketAttachmentRepository(gdb)

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	tk := createTestTicket(t, tickets, "Acesso ao ERP", base)

	for i, text := range []string{"primeiro", "segundo"} {
		c, err := ticket.NewComment(tk.ID(), "ana", text, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, c))
	}

	list, err := comments.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "segundo", list[0].Text())

	count, err := comments.CountByTicket(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	changes := ticket.ChangeSet{{Field: ticket.FieldStatus, Old: "Aberto", New: "Encerrado"}}
	h, err := ticket.NewHistory(tk.ID(), "admin", changes, base.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, history.Create(ctx, h))

	entries, err := history.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Status: 'Aberto' ➔ 'Encerrado'", entries[0].Description())

	a, err := ticket.NewAttachment(tk.ID(), "log.txt", "uploads/log.txt", base)
	require.NoError(t, err)
	require.NoError(t, attachments.Create(ctx, a))

	files, err := attachments.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "log.txt", files[0].Filename())
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	newUser := func(username string, role authorization.UserRole) *user.User {
		u, err := user.NewUser(username, "$2a$10$hash", user.Profile{Role: role, FirstName: username, Email: username + "@example.com"})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))
		return u
	}

	admin := newUser("admin", authorization.RoleAdmin)
	support := newUser("suporte", authorization.RoleSupport)
	newUser("usuario", authorization.RoleUser)

	t.Run("duplicate username", func(t *testing.T) {
		u, err := user.NewUser("admin", "$2a$10$hash", user.Profile{Role: authorization.RoleUser})
		require.NoError(t, err)
		err = repo.Create(ctx, u)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("deactivation persists", func(t *testing.T) {
		support.ToggleActive()
		require.NoError(t, repo.Update(ctx, support))

		found, err := repo.GetByUsername(ctx, "suporte")
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("assignable excludes inactive and plain users", func(t *testing.T) {
		list, err := repo.ListAssignable(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, admin.ID(), list[0].ID())
	})

	t.Run("list filters by search", func(t *testing.T) {
		list, total, err := repo.List(ctx, user.ListFilter{Search: "usu"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "usuario", list[0].Username())
	})

	t.Run("exists and delete", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "usuario")
		require.NoError(t, err)
		assert.True(t, exists)

		u, err := repo.GetByUsername(ctx, "usuario")
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, u.ID()))

		exists, err = repo.ExistsByUsername(ctx, "usuario")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestAssetRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	types := NewAssetTypeRepository(gdb)
	assets := NewAssetRepository(gdb)

	notebook, err := asset.NewAssetType("Notebook")
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, notebook))

	acquired := time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC)
	a, err := asset.NewAsset(notebook, "SN-001", asset.Details{Brand: "Dell", AcquisitionDate: &acquired})
	require.NoError(t, err)
	require.NoError(t, assets.Create(ctx, a))

	t.Run("duplicate serial is rejected by the unique index", func(t *testing.T) {
		dup, err := asset.NewAsset(notebook, "SN-001", asset.Details{})
		require.NoError(t, err)
		err = assets.Create(ctx, dup)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("exists by serial honours exclusion", func(t *testing.T) {
		exists, err := assets.ExistsBySerial(ctx, "SN-001", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = assets.ExistsBySerial(ctx, "SN-001", a.ID())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("dates round trip", func(t *testing.T) {
		found, err := assets.GetByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found.Details().AcquisitionDate)
		assert.Equal(t, "2023-08-15", found.Details().AcquisitionDate.Format("2006-01-02"))
		assert.Nil(t, found.Details().ReturnDate)
		assert.Equal(t, asset.DefaultStatus, found.Details().Status)
	})

	t.Run("type rename syncs copied names", func(t *testing.T) {
		changed, err := notebook.Rename("Laptop")
		require.NoError(t, err)
		require.True(t, changed)
		require.NoError(t, types.Update(ctx, notebook))

		n, err := assets.SyncTypeName(ctx, notebook.ID(), notebook.Name())
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		found, err := assets.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, "Laptop", found.TypeName())
	})

	t.Run("list filters by type", func(t *testing.T) {
		list, total, err := assets.List(ctx, asset.ListFilter{AssetTypeID: notebook.ID()})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, list, 1)

		count, err := assets.CountByType(ctx, notebook.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestCostCenterAndDeviceUserRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	centers := NewCostCenterRepository(gdb)
	people := NewDeviceUserRepository(gdb)

	cc, err := asset.NewCostCenter("1001", "TI")
	require.NoError(t, err)
	require.NoError(t, centers.Create(ctx, cc))

	ccID := cc.ID()
	for _, name := range []string{"Bruno", "Alice"} {
		u, err := asset.NewDeviceUser(asset.DeviceUserFields{FirstName: name, Email: name + "@example.com", CostCenterID: &ccID})
		require.NoError(t, err)
		require.NoError(t, people.Create(ctx, u))
	}

	list, err := people.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].FirstName())
	require.NotNil(t, list[0].CostCenterID())
	assert.Equal(t, ccID, *list[0].CostCenterID())

	require.NoError(t, cc.Update("1002", "Infraestrutura"))
	require.NoError(t, centers.Update(ctx, cc))
	found, err := centers.GetByID(ctx, cc.ID())
	require.NoError(t, err)
	assert.Equal(t, "1002", found.Code())
}

func TestStockRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	th := stock.DefaultThresholds()
	items := NewStockItemRepository(gdb, th)
	movements := NewStockMovementRepository(gdb)
	tm := db.NewTransactionManager(gdb)

	it, err := stock.NewItem(stock.ItemFields{Name: "Mouse", Category: "Periféricos", Unit: "un", Quantity: 3}, th)
	require.NoError(t, err)
	require.NoError(t, items.Create(ctx, it))

	err = tm.RunInTransaction(ctx, func(ctx context.Context) error {
		locked, err := items.GetByIDForUpdate(ctx, it.ID())
		if err != nil {
			return err
		}
		require.NotNil(t, locked)
		if err := locked.Dispatch(3); err != nil {
			return err
		}
		if err := items.Update(ctx, locked); err != nil {
			return err
		}
		mv, err := stock.NewMovement(stock.MovementOut, it.ID(), 3, stock.ExitDescription("", "ana"), "admin")
		if err != nil {
			return err
		}
		return movements.Create(ctx, mv)
	})
	require.NoError(t, err)

	found, err := items.GetByID(ctx, it.ID())
	require.NoError(t, err)
	assert.Zero(t, found.Quantity())
	assert.Equal(t, stock.StatusReserved, found.Status())

	recent, err := movements.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Mouse", recent[0].ItemName())

	outs, err := movements.CountByType(ctx, stock.MovementOut)
	require.NoError(t, err)
	assert.Equal(t, int64(1), outs)

	categories, err := items.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Periféricos"}, categories)

	missing, err := items.GetByIDForUpdate(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	low := stock.StatusReserved
	filtered, err := items.List(ctx, stock.ItemFilter{Status: low})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	require.NoError(t, movements.DeleteByItem(ctx, it.ID()))
	require.NoError(t, items.Delete(ctx, it.ID()))
	recent, err = movements.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
