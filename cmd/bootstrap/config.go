package bootstrap

import (
	"fmt"

	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(validateBusinessHours),
)

// validateBusinessHours fails startup on an unbookable hour window instead of
// serving an empty slot list all day.
func validateBusinessHours(cfg config.Config) error {
	openHour, closeHour := cfg.Business.OpenHour, cfg.Business.CloseHour
	if openHour < 0 || closeHour > 23 || openHour >= closeHour {
		return errs.New(fmt.Sprintf("invalid business hours %d:00-%d:00", openHour, closeHour))
	}
	return nil
}
