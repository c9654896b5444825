package usecases

import (
	"context"
	"sort"

	"github.com/synerjet/bendesk/internal/domain/stock"
)

// memoryItemRepository stores items by id. Update keeps the pointer it was
// given, so reads observe the committed state.
type memoryItemRepository struct {
	items       map[uint]*stock.Item
	nextID      uint
	updateErr   error
	updates     int
	lockedReads int
}

func newMemoryItemRepository(items ...*stock.Item) *memoryItemRepository {
	r := &memoryItemRepository{items: map[uint]*stock.Item{}, nextID: 100}
	for _, it := range items {
		r.items[it.ID()] = it
	}
	return r
}

func (r *memoryItemRepository) Create(_ context.Context, it *stock.Item) error {
	r.nextID++
	it.SetID(r.nextID)
	r.items[it.ID()] = it
	return nil
}

func (r *memoryItemRepository) Update(_ context.Context, it *stock.Item) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	r.items[it.ID()] = it
	return nil
}

func (r *memoryItemRepository) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *memoryItemRepository) GetByID(_ context.Context, id uint) (*stock.Item, error) {
	return r.items[id], nil
}

func (r *memoryItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*stock.Item, error) {
	r.lockedReads++
	return r.GetByID(ctx, id)
}

func (r *memoryItemRepository) List(_ context.Context, f stock.ItemFilter) ([]*stock.Item, error) {
	var out []*stock.Item
	for _, it := range r.items {
		if f.Category != "" && it.Category() != f.Category {
			continue
		}
		if f.Status != "" && it.Status() != f.Status {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r *memoryItemRepository) Categories(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, it := range r.items {
		if c := it.Category(); c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out, nil
}

type memoryMovementRepository struct {
	movements []*stock.Movement
	createErr error
}

func (r *memoryMovementRepository) Create(_ context.Context, m *stock.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	m.SetID(uint(len(r.movements) + 1))
	r.movements = append(r.movements, m)
	return nil
}

func (r *memoryMovementRepository) ListRecent(_ context.Context, limit int) ([]*stock.Movement, error) {
	out := make([]*stock.Movement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		out = append(out, r.movements[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryMovementRepository) CountByType(_ context.Context, kind stock.MovementType) (int64, error) {
	var n int64
	for _, m := range r.movements {
		if m.Type() == kind {
			n++
		}
	}
	return n, nil
}

func (r *memoryMovementRepository) DeleteByItem(_ context.Context, itemID uint) error {
	kept := r.movements[:0]
	for _, m := range r.movements {
		if m.ItemID() != itemID {
			kept = append(kept, m)
		}
	}
	r.movements = kept
	return nil
}

type inlineTx struct {
	calls int
}

func (tx *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}
