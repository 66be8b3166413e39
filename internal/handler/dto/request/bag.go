package request

type AddBagItemRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=service product"`
	ItemID string `json:"itemId" binding:"required,uuid"`
}
