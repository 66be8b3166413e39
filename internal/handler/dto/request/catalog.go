package request

import (
	"glisten-lounge/internal/usecase"
)

type CreateItemRequest struct {
	Name           string `json:"name" binding:"required"`
	Price          string `json:"price" binding:"required"`
	Category       string `json:"category"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	IsMonthlyPromo bool   `json:"isMonthlyPromo"`
	IsSignature    bool   `json:"isSignature"`
	DiscountValue  string `json:"discountValue"`
	DiscountType   string `json:"discountType"`
}

func (r *CreateItemRequest) ToParams(kind string) usecase.CreateItemParams {
	return usecase.CreateItemParams{
		Kind:           kind,
		Name:           r.Name,
		Price:          r.Price,
		Category:       r.Category,
		Duration:       r.Duration,
		Size:           r.Size,
		Image:          r.Image,
		Description:    r.Description,
		IsMonthlyPromo: r.IsMonthlyPromo,
		IsSignature:    r.IsSignature,
		DiscountValue:  r.DiscountValue,
		DiscountType:   r.DiscountType,
	}
}

// UpdateItemRequest applies only the fields present in the body.
type UpdateItemRequest struct {
	Name           *string `json:"name"`
	Price          *string `json:"price"`
	Category       *string `json:"category"`
	Duration       *string `json:"duration"`
	Size           *string `json:"size"`
	Image          *string `json:"image"`
	Description    *string `json:"description"`
	IsMonthlyPromo *bool   `json:"isMonthlyPromo"`
	IsSignature    *bool   `json:"isSignature"`
	DiscountValue  *string `json:"discountValue"`
	DiscountType   *string `json:"discountType"`
}

func (r *UpdateItemRequest) ToParams() usecase.UpdateItemParams {
	return usecase.UpdateItemParams{
		Name:           r.Name,
		Price:          r.Price,
		Category:       r.Category,
		Duration:       r.Duration,
		Size:           r.Size,
		Image:          r.Image,
		Description:    r.Description,
		IsMonthlyPromo: r.IsMonthlyPromo,
		IsSignature:    r.IsSignature,
		DiscountValue:  r.DiscountValue,
		DiscountType:   r.DiscountType,
	}
}
