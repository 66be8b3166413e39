package usecase

import (
	"errors"
	"time"

	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/pkg/clock"
)

var (
	ErrInvalidDate     = errors.New("invalid date format")
	ErrMonthInPast     = errors.New("month is entirely in the past")
	ErrInvalidMonth    = errors.New("invalid month")
)

type AvailabilityRM struct {
	Date  string
	Today string
	Slots []schedule.Slot
}

type AvailabilityUseCase interface {
	SlotsFor(date string) (*AvailabilityRM, error)
	Calendar(year int, month int) (*schedule.MonthView, error)
}

type availabilityUseCaseImpl struct {
	day   schedule.Day
	clock *clock.BusinessClock
}

func NewAvailabilityUseCase(day schedule.Day, businessClock *clock.BusinessClock) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		day:   day,
		clock: businessClock,
	}
}

// SlotsFor enumerates the half-hour grid for a calendar date. "Now" is the
// venue's wall clock, never the visitor's: a customer browsing from Europe
// sees slots disabled by Phnom Penh time.
func (u *availabilityUseCaseImpl) SlotsFor(date string) (*AvailabilityRM, error) {
	day, err := time.ParseInLocation("2006-01-02", date, u.clock.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	now := u.clock.Now()
	return &AvailabilityRM{
		Date:  date,
		Today: u.clock.Today().Format("2006-01-02"),
		Slots: u.day.SlotsFor(day, now),
	}, nil
}

// Calendar builds the month grid. Months entirely before the current
// business-local month are not navigable; past days inside the current
// month come back rendered but unselectable.
func (u *availabilityUseCaseImpl) Calendar(year int, month int) (*schedule.MonthView, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	today := u.clock.Today()
	if schedule.MonthInPast(year, time.Month(month), today) {
		return nil, ErrMonthInPast
	}

	view := schedule.NewMonthView(year, time.Month(month), today)
	return &view, nil
}
