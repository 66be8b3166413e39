package response

import (
	"time"

	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CatalogItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	Name           string    `json:"name"`
	Price          string    `json:"price"`
	EffectivePrice string    `json:"effectivePrice"`
	Category       string    `json:"category,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	Size           string    `json:"size,omitempty"`
	Image          string    `json:"image,omitempty"`
	Description    string    `json:"description,omitempty"`
	IsMonthlyPromo bool      `json:"isMonthlyPromo"`
	IsSignature    bool      `json:"isSignature"`
	DiscountValue  string    `json:"discountValue,omitempty"`
	DiscountType   string    `json:"discountType,omitempty"`
	PromoPrice     string    `json:"promoPrice,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromCatalogItem(rm *readmodel.CatalogItemRM) *CatalogItemResponse {
	var resp CatalogItemResponse
	// Field names line up one to one
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCatalogItems(rms []*readmodel.CatalogItemRM) []*CatalogItemResponse {
	out := make([]*CatalogItemResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCatalogItem(rm))
	}
	return out
}
