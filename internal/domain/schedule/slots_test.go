//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"glisten-lounge/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	day := schedule.NewDay(7, 21)
	labels := day.Labels()

	require.Len(t, labels, 29)
	assert.Equal(t, "7:00", labels[0])
	assert.Equal(t, "7:30", labels[1])
	assert.Equal(t, "20:30", labels[len(labels)-2])
	assert.Equal(t, "21:00", labels[len(labels)-1])
	assert.NotContains(t, labels, "21:30")
	assert.NotContains(t, labels, "07:00")
}

func TestSlotsFor(t *testing.T) {
	day := schedule.NewDay(7, 21)
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2026, 9, 1, 14, 32, 0, 0, loc)

	t.Run("same day disables slots already passed", func(t *testing.T) {
		slots := day.SlotsFor(time.Date(2026, 9, 1, 0, 0, 0, 0, loc), now)

		byLabel := map[string]bool{}
		for _, s := range slots {
			byLabel[s.Label] = s.Available
		}

		assert.False(t, byLabel["7:00"])
		assert.False(t, byLabel["14:00"])
		assert.False(t, byLabel["14:30"])
		assert.True(t, byLabel["15:00"])
		assert.True(t, byLabel["21:00"])
	})

	t.Run("future date is fully open", func(t *testing.T) {
		slots := day.SlotsFor(time.Date(2026, 9, 2, 0, 0, 0, 0, loc), now)
		for _, s := range slots {
			assert.True(t, s.Available, "slot %s", s.Label)
		}
	})

	t.Run("exact current half-hour remains available", func(t *testing.T) {
		onTheDot := time.Date(2026, 9, 1, 14, 30, 0, 0, loc)
		slots := day.SlotsFor(time.Date(2026, 9, 1, 0, 0, 0, 0, loc), onTheDot)
		for _, s := range slots {
			if s.Label == "14:30" {
				assert.True(t, s.Available)
			}
		}
	})
}

func TestContains(t *testing.T) {
	day := schedule.NewDay(7, 21)

	cases := []struct {
		label string
		want  bool
	}{
		{label: "7:00", want: true},
		{label: "14:30", want: true},
		{label: "21:00", want: true},
		{label: "21:30", want: false},
		{label: "6:30", want: false},
		{label: "22:00", want: false},
		{label: "14:15", want: false},
		{label: "noon", want: false},
		{label: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, day.Contains(tc.label))
		})
	}
}

func TestMonthView(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, loc)

	t.Run("current month disables days before today", func(t *testing.T) {
		view := schedule.NewMonthView(2026, time.September, today)

		require.Len(t, view.Days, 30)
		// September 1 2026 is a Tuesday
		assert.Equal(t, 2, view.LeadingBlanks)
		assert.False(t, view.Days[13].Selectable) // the 14th
		assert.True(t, view.Days[14].Selectable)  // the 15th
		assert.True(t, view.Days[29].Selectable)
		assert.Equal(t, "2026-09-01", view.Days[0].Date)
	})

	t.Run("future month is fully selectable", func(t *testing.T) {
		view := schedule.NewMonthView(2026, time.October, today)
		for _, d := range view.Days {
			assert.True(t, d.Selectable, "day %d", d.Day)
		}
	})
}

func TestMonthInPast(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, loc)

	cases := []struct {
		name  string
		year  int
		month time.Month
		want  bool
	}{
		{name: "previous month", year: 2026, month: time.August, want: true},
		{name: "current month", year: 2026, month: time.September, want: false},
		{name: "next month", year: 2026, month: time.October, want: false},
		{name: "december of previous year", year: 2025, month: time.December, want: true},
		{name: "january of next year", year: 2027, month: time.January, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.MonthInPast(tc.year, tc.month, today))
		})
	}
}
