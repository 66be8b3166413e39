package response

import (
	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/usecase"
)

type SlotResponse struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Today string         `json:"today"`
	Slots []SlotResponse `json:"slots"`
}

type CalendarDayResponse struct {
	Day        int    `json:"day"`
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
}

type CalendarResponse struct {
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	LeadingBlanks int                   `json:"leadingBlanks"`
	Days          []CalendarDayResponse `json:"days"`
}

func FromAvailability(rm *usecase.AvailabilityRM) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(rm.Slots))
	for _, s := range rm.Slots {
		slots = append(slots, SlotResponse{Label: s.Label, Available: s.Available})
	}
	return &AvailabilityResponse{
		Date:  rm.Date,
		Today: rm.Today,
		Slots: slots,
	}
}

func FromMonthView(view *schedule.MonthView) *CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(view.Days))
	for _, d := range view.Days {
		days = append(days, CalendarDayResponse{
			Day:        d.Day,
			Date:       d.Date,
			Selectable: d.Selectable,
		})
	}
	return &CalendarResponse{
		Year:          view.Year,
		Month:         int(view.Month),
		LeadingBlanks: view.LeadingBlanks,
		Days:          days,
	}
}
