package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CatalogItemRM struct {
	ID             uuid.UUID
	Kind           string
	Name           string
	Price          string
	EffectivePrice string
	Category       string
	Duration       string
	Size           string
	Image          string
	Description    string
	IsMonthlyPromo bool
	IsSignature    bool
	DiscountValue  string
	DiscountType   string
	PromoPrice     string
	CreatedAt      time.Time
}
