package notifier

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/errs"
)

// ChatForwarder is the notify endpoint's outbound side: Telegram when bot
// credentials are configured, the application log otherwise. It is a distinct
// type from the booking pipeline's notifier so the two delivery paths never
// short-circuit into each other.
type ChatForwarder struct {
	delegate interface {
		Notify(ctx context.Context, message string) error
	}
}

func NewChatForwarder(cfg config.TelegramConfig, logger *slog.Logger) (ChatForwarder, error) {
	if cfg.BotToken == "" {
		logger.Warn("telegram bot token not configured, alerts go to the log")
		return ChatForwarder{delegate: NewLogNotifier(logger)}, nil
	}

	tg, err := NewTelegramNotifier(cfg)
	if err != nil {
		return ChatForwarder{}, err
	}
	return ChatForwarder{delegate: tg}, nil
}

func (f ChatForwarder) Notify(ctx context.Context, message string) error {
	return f.delegate.Notify(ctx, message)
}

// TelegramNotifier delivers booking alerts straight to the business chat.
// Messages are pre-rendered in Telegram Markdown by the caller.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(cfg config.TelegramConfig) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect telegram bot")
	}
	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

func (n *TelegramNotifier) Notify(_ context.Context, message string) error {
	msg := tgbotapi.NewMessage(n.chatID, message)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return errs.Wrap(err, "failed to send telegram message")
	}
	return nil
}
