package notifier

import (
	"context"
	"log/slog"
)

// LogNotifier writes alerts to the application log. It stands in for the chat
// forwarder when no bot credentials are configured, which keeps local
// development working end to end.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, message string) error {
	n.logger.Info("booking alert", "message", message)
	return nil
}
