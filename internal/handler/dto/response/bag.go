package response

import (
	"glisten-lounge/internal/usecase/readmodel"
)

type LineItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Duration string `json:"duration,omitempty"`
	Image    string `json:"image,omitempty"`
}

type BagResponse struct {
	Items []LineItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func FromBag(rm *readmodel.BagRM) *BagResponse {
	return &BagResponse{
		Items: fromLineItems(rm.Items),
		Total: rm.Total,
	}
}

func fromLineItems(items []readmodel.LineItemRM) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Category: it.Category,
			Duration: it.Duration,
			Image:    it.Image,
		})
	}
	return out
}
