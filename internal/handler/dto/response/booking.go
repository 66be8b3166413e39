package response

import (
	"time"

	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID          `json:"id"`
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Date         string             `json:"date"`
	TimeSlot     string             `json:"timeSlot"`
	Branch       string             `json:"branch"`
	Items        []LineItemResponse `json:"items"`
	TotalPrice   float64            `json:"totalPrice"`
	Notes        string             `json:"notes,omitempty"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func FromBooking(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		CustomerName: rm.CustomerName,
		Phone:        rm.Phone,
		Date:         rm.Date,
		TimeSlot:     rm.TimeSlot,
		Branch:       rm.Branch,
		Items:        fromLineItems(rm.Items),
		TotalPrice:   rm.TotalPrice,
		Notes:        rm.Notes,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromBookings(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBooking(rm))
	}
	return out
}
