package bootstrap

import (
	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/pkg/config"

	"go.uber.org/fx"
)

// BusinessModule wires the venue's operating parameters: the wall clock in
// the business timezone and the daily walk-in window.
var BusinessModule = fx.Module("business",
	fx.Provide(
		clock.NewRealClock,
		NewBusinessClock,
		NewBusinessDay,
	),
)

func NewBusinessClock(cfg config.Config, inner clock.Clock) (*clock.BusinessClock, error) {
	return clock.NewBusinessClock(inner, cfg.Business.TimeZone)
}

func NewBusinessDay(cfg config.Config) schedule.Day {
	return schedule.NewDay(cfg.Business.OpenHour, cfg.Business.CloseHour)
}
