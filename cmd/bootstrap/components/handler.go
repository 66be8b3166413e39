package components

import (
	"glisten-lounge/internal/handler"
	"glisten-lounge/internal/handler/api"
	"glisten-lounge/internal/handler/middleware"
	"glisten-lounge/internal/infra/notifier"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewFeedHandler,
		NewBagHandler,
		NewBookingHandler,
		NewNotifyHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBagHandler(bagUseCase usecase.BagUseCase, cfg config.Config) *api.BagHandler {
	return api.NewBagHandler(bagUseCase, cfg.Bag)
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, cfg config.Config) *api.BookingHandler {
	return api.NewBookingHandler(bookingUseCase, cfg.Bag)
}

func NewNotifyHandler(forwarder notifier.ChatForwarder) *api.NotifyHandler {
	return api.NewNotifyHandler(forwarder)
}

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	bag *api.BagHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	notify *api.NotifyHandler,
	feed *api.FeedHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Catalog:      catalog,
		Bag:          bag,
		Booking:      booking,
		Availability: availability,
		Notify:       notify,
		Feed:         feed,
	}
}
