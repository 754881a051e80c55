package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/port"
)

type webhookService struct {
	notifier port.Notifier
	logger   *slog.Logger
}

// NewWebhookService creates a new webhook service
func NewWebhookService(notifier port.Notifier, logger *slog.Logger) port.WebhookService {
	return &webhookService{notifier: notifier, logger: logger}
}

// TestWebhook forwards body, merged over a fixed test payload, to the webhook
// receiver and returns its answer. A non-2xx answer is not an error here.
func (w *webhookService) TestWebhook(ctx context.Context, identity domain.Identity, body map[string]any) (*domain.WebhookDelivery, error) {
	payload := map[string]any{
		"test":        true,
		"message":     "Test webhook call",
		"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		"triggeredBy": identity.Email,
	}
	for k, v := range body {
		payload[k] = v
	}

	delivery, err := w.notifier.Send(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotificationFailure, err)
	}

	w.logger.Info("webhook test delivered", "status", delivery.StatusCode, "triggered_by", identity.Email)
	return delivery, nil
}
