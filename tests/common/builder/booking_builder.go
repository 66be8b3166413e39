package builder

import (
	"glisten-lounge/internal/domain/bag"
	"glisten-lounge/internal/domain/booking"
)

// BookingSpecBuilder assembles valid booking submissions for tests. Defaults
// describe a future-dated request with one bag line.
type BookingSpecBuilder struct {
	spec booking.Spec
}

func NewBookingSpecBuilder() *BookingSpecBuilder {
	return &BookingSpecBuilder{
		spec: booking.Spec{
			CustomerName: "Sokha Chan",
			Phone:        "+855 12 345 678",
			Date:         "2026-10-05",
			TimeSlot:     "10:30",
			Branch:       "Phnom Penh",
			Items: bag.Items{
				{ID: "item-1", Name: "Classic Manicure", Price: "$24.00", Category: "Nails"},
			},
		},
	}
}

func (b *BookingSpecBuilder) WithCustomerName(name string) *BookingSpecBuilder {
	b.spec.CustomerName = name
	return b
}

func (b *BookingSpecBuilder) WithPhone(phone string) *BookingSpecBuilder {
	b.spec.Phone = phone
	return b
}

func (b *BookingSpecBuilder) WithDate(date string) *BookingSpecBuilder {
	b.spec.Date = date
	return b
}

func (b *BookingSpecBuilder) WithTimeSlot(slot string) *BookingSpecBuilder {
	b.spec.TimeSlot = slot
	return b
}

func (b *BookingSpecBuilder) WithItems(items bag.Items) *BookingSpecBuilder {
	b.spec.Items = items
	return b
}

func (b *BookingSpecBuilder) WithNotes(notes string) *BookingSpecBuilder {
	b.spec.Notes = notes
	return b
}

func (b *BookingSpecBuilder) Build() booking.Spec {
	return b.spec
}
