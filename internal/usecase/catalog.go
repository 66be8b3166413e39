package usecase

import (
	"context"
	"errors"

	"glisten-lounge/internal/domain/catalog"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/pkg/errs"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrItemNotFound     = errors.New("catalog item not found")
	ErrInvalidItemKind  = errors.New("invalid catalog kind")
	ErrCatalogOperation = errors.New("catalog operation failed")
)

// ListFilter narrows a storefront listing. Category matches the free-text
// tag; PromoOnly keeps items flagged for the monthly promotions rail.
type ListFilter struct {
	Category  string
	PromoOnly bool
}

type CatalogRepository interface {
	List(ctx context.Context, kind catalog.Kind, filter ListFilter) ([]*catalog.Item, error)
	FindByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error)
	Create(ctx context.Context, item *catalog.Item) error
	Update(ctx context.Context, kind catalog.Kind, id uuid.UUID, patch UpdateItemParams) (*catalog.Item, error)
	Delete(ctx context.Context, kind catalog.Kind, id uuid.UUID) error
}

type CreateItemParams struct {
	Kind           string
	Name           string
	Price          string
	Category       string
	Duration       string
	Size           string
	Image          string
	Description    string
	IsMonthlyPromo bool
	IsSignature    bool
	DiscountValue  string
	DiscountType   string
}

// UpdateItemParams is a partial update: nil means "leave unchanged". Flag
// toggles from the dashboard arrive as single-field patches.
type UpdateItemParams struct {
	Name           *string
	Price          *string
	Category       *string
	Duration       *string
	Size           *string
	Image          *string
	Description    *string
	IsMonthlyPromo *bool
	IsSignature    *bool
	DiscountValue  *string
	DiscountType   *string
}

type CatalogUseCase interface {
	ListItems(ctx context.Context, kind string, filter ListFilter) ([]*readmodel.CatalogItemRM, error)
	GetItem(ctx context.Context, kind string, id uuid.UUID) (*readmodel.CatalogItemRM, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*readmodel.CatalogItemRM, error)
	UpdateItem(ctx context.Context, kind string, id uuid.UUID, patch UpdateItemParams) (*readmodel.CatalogItemRM, error)
	DeleteItem(ctx context.Context, kind string, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
}

func NewCatalogUseCase(catalogRepo CatalogRepository) CatalogUseCase {
	return &catalogUseCaseImpl{catalogRepo: catalogRepo}
}

func (u *catalogUseCaseImpl) ListItems(ctx context.Context, kind string, filter ListFilter) ([]*readmodel.CatalogItemRM, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	items, err := u.catalogRepo.List(ctx, k, filter)
	if err != nil {
		return nil, markCatalogErr(err)
	}

	result := make([]*readmodel.CatalogItemRM, 0, len(items))
	for _, item := range items {
		rm, err := toCatalogItemRM(item)
		if err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	return result, nil
}

func (u *catalogUseCaseImpl) GetItem(ctx context.Context, kind string, id uuid.UUID) (*readmodel.CatalogItemRM, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	item, err := u.catalogRepo.FindByID(ctx, k, id)
	if err != nil {
		return nil, markCatalogErr(err)
	}
	return toCatalogItemRM(item)
}

func (u *catalogUseCaseImpl) CreateItem(ctx context.Context, params CreateItemParams) (*readmodel.CatalogItemRM, error) {
	k, err := parseKind(params.Kind)
	if err != nil {
		return nil, err
	}

	item, err := catalog.NewItem(k, params.Name, params.Price, params.Category)
	if err != nil {
		return nil, err
	}
	item.Duration = params.Duration
	item.Size = params.Size
	item.Image = params.Image
	item.Description = params.Description
	item.IsMonthlyPromo = params.IsMonthlyPromo
	item.IsSignature = params.IsSignature
	item.DiscountValue = params.DiscountValue
	if params.DiscountType != "" {
		dt := catalog.DiscountType(params.DiscountType)
		if !dt.IsValid() {
			return nil, catalog.ErrInvalidDiscount
		}
		item.DiscountType = dt
	}

	if err := u.catalogRepo.Create(ctx, item); err != nil {
		return nil, markCatalogErr(err)
	}
	return toCatalogItemRM(item)
}

func (u *catalogUseCaseImpl) UpdateItem(ctx context.Context, kind string, id uuid.UUID, patch UpdateItemParams) (*readmodel.CatalogItemRM, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	if patch.DiscountType != nil && !catalog.DiscountType(*patch.DiscountType).IsValid() {
		return nil, catalog.ErrInvalidDiscount
	}

	item, err := u.catalogRepo.Update(ctx, k, id, patch)
	if err != nil {
		return nil, markCatalogErr(err)
	}
	return toCatalogItemRM(item)
}

func (u *catalogUseCaseImpl) DeleteItem(ctx context.Context, kind string, id uuid.UUID) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}
	if err := u.catalogRepo.Delete(ctx, k, id); err != nil {
		return markCatalogErr(err)
	}
	return nil
}

// markCatalogErr translates storage errors into the sentinels handlers
// switch on.
func markCatalogErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrItemNotFound)
	}
	return errs.Mark(err, ErrCatalogOperation)
}

func parseKind(kind string) (catalog.Kind, error) {
	k := catalog.Kind(kind)
	if !k.IsValid() {
		return "", ErrInvalidItemKind
	}
	return k, nil
}

func toCatalogItemRM(item *catalog.Item) (*readmodel.CatalogItemRM, error) {
	var rm readmodel.CatalogItemRM
	if err := copier.Copy(&rm, item); err != nil {
		return nil, err
	}
	rm.Kind = item.Kind.String()
	rm.DiscountType = string(item.DiscountType)
	rm.EffectivePrice = catalog.EffectivePrice(item)
	return &rm, nil
}
