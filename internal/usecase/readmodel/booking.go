package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// LineItemRM is one requested service/product on a booking, as shown in the
// dashboard list.
type LineItemRM struct {
	ID       string
	Name     string
	Price    string
	Category string
	Duration string
	Image    string
}

type BookingRM struct {
	ID           uuid.UUID
	CustomerName string
	Phone        string
	Date         string
	TimeSlot     string
	Branch       string
	Items        []LineItemRM
	TotalPrice   float64
	Notes        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type BagRM struct {
	Items []LineItemRM
	Total float64
}
