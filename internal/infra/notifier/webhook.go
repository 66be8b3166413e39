package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/errs"
)

type webhookPayload struct {
	Message string `json:"message"`
}

// WebhookNotifier forwards booking alerts to the configured webhook as a
// small JSON body. Delivery failures are the caller's concern to log, not to
// surface to the customer.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

func NewWebhookNotifier(cfg config.NotifyConfig) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.WebhookURL,
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, message string) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(webhookPayload{Message: message})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to deliver notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.New(fmt.Sprintf("notification webhook returned status %d", resp.StatusCode))
	}
	return nil
}
