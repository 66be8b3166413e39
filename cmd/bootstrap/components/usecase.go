package components

import (
	"log/slog"

	"glisten-lounge/internal/domain/schedule"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewBagUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewTokenValidator,
		NewBookingUseCase,
	),
)

func NewBookingUseCase(
	bookingRepo usecase.BookingRepository,
	bagStore usecase.BagStore,
	notifier usecase.Notifier,
	feed usecase.FeedPublisher,
	day schedule.Day,
	businessClock *clock.BusinessClock,
	cfg config.Config,
	logger *slog.Logger,
) usecase.BookingUseCase {
	return usecase.NewBookingUseCase(
		bookingRepo,
		bagStore,
		notifier,
		feed,
		day,
		businessClock,
		cfg.Business.Branch,
		logger,
	)
}
