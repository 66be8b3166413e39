package usecase

import (
	"context"
	"errors"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/pkg/errs"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrBagStorage = errors.New("bag storage failed")

// BagStore is the durable session-scoped bag persistence. Mutations are
// write-through: the in-memory collection is updated first, then the whole
// collection is persisted synchronously.
type BagStore interface {
	Items(sessionID string) (bag.Items, error)
	Put(sessionID string, items bag.Items) error
	Clear(sessionID string) error
}

type BagUseCase interface {
	Get(ctx context.Context, sessionID string) (*readmodel.BagRM, error)
	AddItem(ctx context.Context, sessionID string, kind string, itemID uuid.UUID) (*readmodel.BagRM, error)
	RemoveItem(ctx context.Context, sessionID string, itemID string) (*readmodel.BagRM, error)
	Clear(ctx context.Context, sessionID string) error
}

type bagUseCaseImpl struct {
	store       BagStore
	catalogRepo CatalogRepository
}

func NewBagUseCase(store BagStore, catalogRepo CatalogRepository) BagUseCase {
	return &bagUseCaseImpl{
		store:       store,
		catalogRepo: catalogRepo,
	}
}

func (u *bagUseCaseImpl) Get(_ context.Context, sessionID string) (*readmodel.BagRM, error) {
	items, err := u.store.Items(sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrBagStorage)
	}
	return toBagRM(items), nil
}

// AddItem snapshots the catalog item into the bag. Adding an item already in
// the bag is a no-op; the current contents are returned either way.
func (u *bagUseCaseImpl) AddItem(ctx context.Context, sessionID string, kind string, itemID uuid.UUID) (*readmodel.BagRM, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	item, err := u.catalogRepo.FindByID(ctx, k, itemID)
	if err != nil {
		return nil, markCatalogErr(err)
	}

	items, err := u.store.Items(sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrBagStorage)
	}

	updated, changed := items.Add(bag.SnapshotItem(item))
	if changed {
		if err := u.store.Put(sessionID, updated); err != nil {
			return nil, errs.Mark(err, ErrBagStorage)
		}
	}
	return toBagRM(updated), nil
}

func (u *bagUseCaseImpl) RemoveItem(_ context.Context, sessionID string, itemID string) (*readmodel.BagRM, error) {
	items, err := u.store.Items(sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrBagStorage)
	}

	updated, changed := items.Remove(itemID)
	if changed {
		if err := u.store.Put(sessionID, updated); err != nil {
			return nil, errs.Mark(err, ErrBagStorage)
		}
	}
	return toBagRM(updated), nil
}

func (u *bagUseCaseImpl) Clear(_ context.Context, sessionID string) error {
	if err := u.store.Clear(sessionID); err != nil {
		return errs.Mark(err, ErrBagStorage)
	}
	return nil
}

func toBagRM(items bag.Items) *readmodel.BagRM {
	rm := &readmodel.BagRM{
		Items: make([]readmodel.LineItemRM, 0, len(items)),
		Total: items.Total(),
	}
	for _, it := range items {
		rm.Items = append(rm.Items, readmodel.LineItemRM(it))
	}
	return rm
}
