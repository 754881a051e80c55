package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"

	"github.com/go-resty/resty/v2"
)

const userAgent = "upload-relay-webhook/1"

// Client posts JSON payloads to the configured webhook receiver
type Client struct {
	client *resty.Client
	url    string
	logger *slog.Logger
}

// NewClient returns Client. Every call is bounded by cfg.Timeout.
func NewClient(cfg config.WebhookConfig, logger *slog.Logger) *Client {
	return &Client{
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("User-Agent", userAgent),
		url:    cfg.URL,
		logger: logger,
	}
}

// Notify delivers payload and fails unless the receiver answers 2xx
func (c *Client) Notify(ctx context.Context, payload domain.WebhookPayload) error {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Webhook-Event", string(payload.Event)).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotificationFailure, err)
	}

	if !res.IsSuccess() {
		return fmt.Errorf("%w: receiver answered %d", domain.ErrNotificationFailure, res.StatusCode())
	}

	c.logger.Debug("webhook delivered",
		slog.String("event", string(payload.Event)),
		slog.String("file", payload.FileName),
		slog.Int("status", res.StatusCode()))

	return nil
}

// Send posts body as is and returns whatever the receiver answered
func (c *Client) Send(ctx context.Context, body any) (*domain.WebhookDelivery, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to call webhook: %w", err)
	}

	return &domain.WebhookDelivery{
		StatusCode: res.StatusCode(),
		StatusText: http.StatusText(res.StatusCode()),
		Body:       res.String(),
	}, nil
}
