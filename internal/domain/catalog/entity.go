package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("catalog item name is required")
	ErrEmptyPrice      = errors.New("catalog item price is required")
	ErrInvalidKind     = errors.New("invalid catalog kind")
	ErrInvalidDiscount = errors.New("invalid discount type")
)

// Kind separates the two storefront collections. Services carry a duration
// label ("60 min"), products a size label ("100ml"); everything else is the
// same shape.
type Kind string

const (
	KindService Kind = "service"
	KindProduct Kind = "product"
)

func (k Kind) IsValid() bool {
	return k == KindService || k == KindProduct
}

func (k Kind) String() string {
	return string(k)
}

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func (d DiscountType) IsValid() bool {
	return d == DiscountPercent || d == DiscountFixed
}

// Item is a storefront catalog record. Prices are display strings entered by
// the admin ("$24.00"); arithmetic only ever happens on a parsed copy, never
// in place. Fields are exported because the record crosses every layer
// (admin CRUD, storefront listing, bag snapshotting) unchanged.
type Item struct {
	ID             uuid.UUID
	Kind           Kind
	Name           string
	Price          string
	Category       string
	Duration       string // services
	Size           string // products
	Image          string
	Description    string
	IsMonthlyPromo bool
	IsSignature    bool
	DiscountValue  string
	DiscountType   DiscountType
	PromoPrice     string // legacy pre-computed promo price, kept for old records
	CreatedAt      time.Time
}

func NewItem(kind Kind, name, price, category string) (*Item, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(price) == "" {
		return nil, ErrEmptyPrice
	}

	return &Item{
		ID:           uuid.New(),
		Kind:         kind,
		Name:         name,
		Price:        price,
		Category:     category,
		DiscountType: DiscountPercent,
	}, nil
}

// HasActivePromo mirrors the storefront promo badge condition: the monthly
// flag must be set and a discount value present.
func (i *Item) HasActivePromo() bool {
	return i.IsMonthlyPromo && i.DiscountValue != ""
}
