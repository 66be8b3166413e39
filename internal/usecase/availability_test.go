//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(t *testing.T, now time.Time) (usecase.AvailabilityUseCase, *clock.MockClock) {
	t.Helper()

	mock := clock.NewMockClock(now)
	businessClock, err := clock.NewBusinessClock(mock, "UTC")
	require.NoError(t, err)

	return usecase.NewAvailabilityUseCase(schedule.NewDay(7, 21), businessClock), mock
}

func TestSlotsFor(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 32, 0, 0, time.UTC)
	uc, _ := newAvailabilityFixture(t, now)

	t.Run("today's grid reflects the venue clock", func(t *testing.T) {
		rm, err := uc.SlotsFor("2026-09-01")
		require.NoError(t, err)

		assert.Equal(t, "2026-09-01", rm.Date)
		assert.Equal(t, "2026-09-01", rm.Today)

		byLabel := map[string]bool{}
		for _, s := range rm.Slots {
			byLabel[s.Label] = s.Available
		}
		assert.False(t, byLabel["14:00"])
		assert.True(t, byLabel["15:00"])
	})

	t.Run("future date fully open", func(t *testing.T) {
		rm, err := uc.SlotsFor("2026-09-10")
		require.NoError(t, err)
		for _, s := range rm.Slots {
			assert.True(t, s.Available, "slot %s", s.Label)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := uc.SlotsFor("Sept 1")
		assert.ErrorIs(t, err, usecase.ErrInvalidDate)
	})
}

func TestCalendar(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	uc, _ := newAvailabilityFixture(t, now)

	t.Run("current month", func(t *testing.T) {
		view, err := uc.Calendar(2026, 9)
		require.NoError(t, err)
		assert.Equal(t, 2026, view.Year)
		assert.Equal(t, time.September, view.Month)
		assert.False(t, view.Days[0].Selectable)
		assert.True(t, view.Days[14].Selectable)
	})

	t.Run("past month rejected", func(t *testing.T) {
		_, err := uc.Calendar(2026, 8)
		assert.ErrorIs(t, err, usecase.ErrMonthInPast)
	})

	t.Run("past year rejected", func(t *testing.T) {
		_, err := uc.Calendar(2025, 12)
		assert.ErrorIs(t, err, usecase.ErrMonthInPast)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := uc.Calendar(2026, 13)
		assert.ErrorIs(t, err, usecase.ErrInvalidMonth)
	})
}
