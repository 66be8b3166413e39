package bootstrap

import (
	"log/slog"

	"glisten-lounge/internal/infra/notifier"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/usecase"

	"go.uber.org/fx"
)

// NotifierModule wires two delivery paths. The booking pipeline posts the
// rendered alert to the notify webhook, and the webhook endpoint forwards it
// to the business chat.
var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewBookingNotifier,
			fx.As(new(usecase.Notifier)),
		),
		NewChatForwarder,
	),
)

func NewBookingNotifier(cfg config.Config) *notifier.WebhookNotifier {
	return notifier.NewWebhookNotifier(cfg.Notify)
}

func NewChatForwarder(cfg config.Config, logger *slog.Logger) (notifier.ChatForwarder, error) {
	return notifier.NewChatForwarder(cfg.Telegram, logger)
}
