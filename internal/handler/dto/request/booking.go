package request

import (
	"glisten-lounge/internal/usecase"
)

type SubmitBookingRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Date         string `json:"date" binding:"required"`
	TimeSlot     string `json:"timeSlot" binding:"required"`
	Notes        string `json:"notes"`
}

func (r *SubmitBookingRequest) ToParams() usecase.SubmitBookingParams {
	return usecase.SubmitBookingParams{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Date:         r.Date,
		TimeSlot:     r.TimeSlot,
		Notes:        r.Notes,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed"`
}

type NotifyRequest struct {
	Message string `json:"message" binding:"required"`
}
