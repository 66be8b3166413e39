//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"glisten-lounge/internal/domain/catalog"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/usecase"
	"glisten-lounge/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	items map[uuid.UUID]*catalog.Item
}

func newFakeCatalogRepo(items ...*catalog.Item) *fakeCatalogRepo {
	f := &fakeCatalogRepo{items: map[uuid.UUID]*catalog.Item{}}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeCatalogRepo) List(_ context.Context, kind catalog.Kind, _ usecase.ListFilter) ([]*catalog.Item, error) {
	var out []*catalog.Item
	for _, it := range f.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) FindByID(_ context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error) {
	it, ok := f.items[id]
	if !ok || it.Kind != kind {
		return nil, infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}
	return it, nil
}

func (f *fakeCatalogRepo) Create(_ context.Context, item *catalog.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, _ catalog.Kind, id uuid.UUID, _ usecase.UpdateItemParams) (*catalog.Item, error) {
	return f.items[id], nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, _ catalog.Kind, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func TestBagUseCase(t *testing.T) {
	const sessionID = "session-1"
	ctx := context.Background()

	manicure := builder.NewCatalogItemBuilder().WithPrice("$24.00").Build()
	massage := builder.NewCatalogItemBuilder().WithName("Aroma Massage").WithPrice("$35.00").Build()

	newUC := func() (usecase.BagUseCase, *fakeBagStore) {
		store := newFakeBagStore()
		return usecase.NewBagUseCase(store, newFakeCatalogRepo(manicure, massage)), store
	}

	t.Run("empty session yields an empty bag", func(t *testing.T) {
		uc, _ := newUC()

		rm, err := uc.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, rm.Items)
		assert.Zero(t, rm.Total)
	})

	t.Run("add snapshots the item and totals the bag", func(t *testing.T) {
		uc, _ := newUC()

		_, err := uc.AddItem(ctx, sessionID, "service", manicure.ID)
		require.NoError(t, err)
		rm, err := uc.AddItem(ctx, sessionID, "service", massage.ID)
		require.NoError(t, err)

		assert.Len(t, rm.Items, 2)
		assert.InDelta(t, 59.0, rm.Total, 0.0001)
	})

	t.Run("duplicate add leaves the bag unchanged", func(t *testing.T) {
		uc, store := newUC()

		_, err := uc.AddItem(ctx, sessionID, "service", manicure.ID)
		require.NoError(t, err)
		before := len(store.items[sessionID])

		rm, err := uc.AddItem(ctx, sessionID, "service", manicure.ID)
		require.NoError(t, err)
		assert.Len(t, rm.Items, before)
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, _ := newUC()

		_, err := uc.AddItem(ctx, sessionID, "service", uuid.New())
		assert.ErrorIs(t, err, usecase.ErrItemNotFound)
	})

	t.Run("invalid kind", func(t *testing.T) {
		uc, _ := newUC()

		_, err := uc.AddItem(ctx, sessionID, "bundle", manicure.ID)
		assert.ErrorIs(t, err, usecase.ErrInvalidItemKind)
	})

	t.Run("remove then clear", func(t *testing.T) {
		uc, _ := newUC()

		_, err := uc.AddItem(ctx, sessionID, "service", manicure.ID)
		require.NoError(t, err)
		_, err = uc.AddItem(ctx, sessionID, "service", massage.ID)
		require.NoError(t, err)

		rm, err := uc.RemoveItem(ctx, sessionID, manicure.ID.String())
		require.NoError(t, err)
		assert.Len(t, rm.Items, 1)
		assert.InDelta(t, 35.0, rm.Total, 0.0001)

		require.NoError(t, uc.Clear(ctx, sessionID))
		rm, err = uc.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, rm.Items)
	})

	t.Run("removing an absent item is a no-op", func(t *testing.T) {
		uc, _ := newUC()

		_, err := uc.AddItem(ctx, sessionID, "service", manicure.ID)
		require.NoError(t, err)

		rm, err := uc.RemoveItem(ctx, sessionID, "not-in-bag")
		require.NoError(t, err)
		assert.Len(t, rm.Items, 1)
	})
}
