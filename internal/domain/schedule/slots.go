package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSlot = errors.New("invalid time slot label")

// Slot is one half-hour booking opportunity within business hours.
// Labels are rendered without zero padding ("7:00", "14:30"), matching how
// the storefront has always displayed them and how existing bookings store
// their time field.
type Slot struct {
	Label     string
	Hour      int
	Minute    int
	Available bool
}

// Day enumerates the fixed daily slot grid: on the hour and half past, from
// the opening hour through the closing hour inclusive, with no half-past
// slot after close.
type Day struct {
	openHour  int
	closeHour int
}

func NewDay(openHour, closeHour int) Day {
	if closeHour < openHour {
		closeHour = openHour
	}
	return Day{openHour: openHour, closeHour: closeHour}
}

func (d Day) Labels() []string {
	labels := make([]string, 0, (d.closeHour-d.openHour)*2+1)
	for h := d.openHour; h <= d.closeHour; h++ {
		labels = append(labels, SlotLabel(h, 0))
		if h != d.closeHour {
			labels = append(labels, SlotLabel(h, 30))
		}
	}
	return labels
}

// SlotsFor evaluates the grid for a calendar date against the current
// business-local time. A slot is unavailable only when the date is today (in
// business-local terms) and the slot's wall time has already passed. Future
// dates are always fully open: availability is purely time-based, a slot
// taken by another customer is still offered.
func (d Day) SlotsFor(date time.Time, now time.Time) []Slot {
	sameDay := date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()

	labels := d.Labels()
	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		h, m, _ := ParseSlotLabel(label)
		available := true
		if sameDay {
			if h < now.Hour() || (h == now.Hour() && m < now.Minute()) {
				available = false
			}
		}
		slots = append(slots, Slot{Label: label, Hour: h, Minute: m, Available: available})
	}
	return slots
}

// Contains reports whether the label names a slot on this day's grid.
func (d Day) Contains(label string) bool {
	h, m, err := ParseSlotLabel(label)
	if err != nil {
		return false
	}
	if m != 0 && m != 30 {
		return false
	}
	if h < d.openHour || h > d.closeHour {
		return false
	}
	if h == d.closeHour && m != 0 {
		return false
	}
	return true
}

func SlotLabel(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

func ParseSlotLabel(label string) (hour, minute int, err error) {
	parts := strings.SplitN(label, ":", 2)
	if len(parts) != 2 {
		return 0, 0, ErrInvalidSlot
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidSlot
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidSlot
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidSlot
	}
	return hour, minute, nil
}
