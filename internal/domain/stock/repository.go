package stock

import "context"

type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uint) error
	// GetByID returns (nil, nil) when the item does not exist.
	GetByID(ctx context.Context, id uint) (*Item, error)
	// GetByIDForUpdate is GetByID holding a row lock until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Item, error)
	// List orders by name.
	List(ctx context.Context, filter ItemFilter) ([]*Item, error)
	// Categories returns the distinct non-empty categories, sorted.
	Categories(ctx context.Context) ([]string, error)
}

type ItemFilter struct {
	Category string
	Status   Status
}

type MovementRepository interface {
	Create(ctx context.Context, m *Movement) error
	// ListRecent returns the newest movements first. limit <= 0 returns all.
	ListRecent(ctx context.Context, limit int) ([]*Movement, error)
	CountByType(ctx context.Context, kind MovementType) (int64, error)
	DeleteByItem(ctx context.Context, itemID uint) error
}
