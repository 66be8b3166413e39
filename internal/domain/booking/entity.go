package booking

import (
	"errors"
	"strings"
	"time"

	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyBag          = errors.New("bag is empty")
	ErrMissingName       = errors.New("customer name is required")
	ErrMissingPhone      = errors.New("customer phone is required")
	ErrMissingDate       = errors.New("booking date is required")
	ErrMissingTime       = errors.New("booking time slot is required")
	ErrInvalidDate       = errors.New("invalid booking date")
	ErrInvalidTime       = errors.New("time slot outside business hours")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const dateLayout = "2006-01-02"

// Booking is a customer's appointment request: contact details, the chosen
// business-local date and slot, and the bag contents frozen at submission.
type Booking struct {
	id           uuid.UUID
	customerName string
	phone        string
	date         string // business-local calendar date, YYYY-MM-DD
	timeSlot     string
	branch       string
	items        bag.Items
	totalPrice   float64
	notes        string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// Spec describes a submission attempt before validation.
type Spec struct {
	CustomerName string
	Phone        string
	Date         string
	TimeSlot     string
	Branch       string
	Items        bag.Items
	Notes        string
}

// New validates a submission and freezes it. Every guard here backs the
// submit control: a request missing any required field never reaches
// persistence. The total is the sum of the parsed line prices; lines that
// do not parse contribute zero.
func New(spec Spec, day schedule.Day, now time.Time) (*Booking, error) {
	if len(spec.Items) == 0 {
		return nil, ErrEmptyBag
	}
	name := strings.TrimSpace(spec.CustomerName)
	if name == "" {
		return nil, ErrMissingName
	}
	phone := strings.TrimSpace(spec.Phone)
	if phone == "" {
		return nil, ErrMissingPhone
	}
	if spec.Date == "" {
		return nil, ErrMissingDate
	}
	if spec.TimeSlot == "" {
		return nil, ErrMissingTime
	}
	date, err := time.Parse(dateLayout, spec.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if schedule.IsPastDate(date, today) {
		return nil, ErrInvalidDate
	}
	if !day.Contains(spec.TimeSlot) {
		return nil, ErrInvalidTime
	}

	return &Booking{
		id:           uuid.New(),
		customerName: name,
		phone:        phone,
		date:         spec.Date,
		timeSlot:     spec.TimeSlot,
		branch:       spec.Branch,
		items:        spec.Items,
		totalPrice:   spec.Items.Total(),
		notes:        strings.TrimSpace(spec.Notes),
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customerName, phone, date, timeSlot, branch string,
	items bag.Items,
	totalPrice float64,
	notes string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		customerName: customerName,
		phone:        phone,
		date:         date,
		timeSlot:     timeSlot,
		branch:       branch,
		items:        items,
		totalPrice:   totalPrice,
		notes:        notes,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) Transition(next Status) error {
	if !next.IsValid() || !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) Phone() string        { return b.phone }
func (b *Booking) Date() string         { return b.date }
func (b *Booking) TimeSlot() string     { return b.timeSlot }
func (b *Booking) Branch() string       { return b.branch }
func (b *Booking) Items() bag.Items     { return b.items }
func (b *Booking) TotalPrice() float64  { return b.totalPrice }
func (b *Booking) Notes() string        { return b.notes }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
