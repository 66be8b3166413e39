package builder

import (
	"time"

	"glisten-lounge/internal/domain/catalog"

	"github.com/google/uuid"
)

// CatalogItemBuilder assembles catalog items for tests with storefront-shaped
// defaults.
type CatalogItemBuilder struct {
	item catalog.Item
}

func NewCatalogItemBuilder() *CatalogItemBuilder {
	return &CatalogItemBuilder{
		item: catalog.Item{
			ID:           uuid.New(),
			Kind:         catalog.KindService,
			Name:         "Classic Manicure",
			Price:        "$24.00",
			Category:     "Nails",
			Duration:     "45 min",
			DiscountType: catalog.DiscountPercent,
			CreatedAt:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

func (b *CatalogItemBuilder) WithKind(kind catalog.Kind) *CatalogItemBuilder {
	b.item.Kind = kind
	return b
}

func (b *CatalogItemBuilder) WithName(name string) *CatalogItemBuilder {
	b.item.Name = name
	return b
}

func (b *CatalogItemBuilder) WithPrice(price string) *CatalogItemBuilder {
	b.item.Price = price
	return b
}

func (b *CatalogItemBuilder) WithSize(size string) *CatalogItemBuilder {
	b.item.Size = size
	return b
}

func (b *CatalogItemBuilder) WithPromo(discountValue string, discountType catalog.DiscountType) *CatalogItemBuilder {
	b.item.IsMonthlyPromo = true
	b.item.DiscountValue = discountValue
	b.item.DiscountType = discountType
	return b
}

func (b *CatalogItemBuilder) WithPromoPrice(promoPrice string) *CatalogItemBuilder {
	b.item.PromoPrice = promoPrice
	return b
}

func (b *CatalogItemBuilder) Build() *catalog.Item {
	item := b.item
	return &item
}
