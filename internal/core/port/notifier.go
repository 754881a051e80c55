package port

import (
	"context"

	"upload-relay/internal/core/domain"
)

// Notifier delivers upload metadata to the external webhook receiver
type Notifier interface {
	Notify(ctx context.Context, payload domain.WebhookPayload) error
	Send(ctx context.Context, body any) (*domain.WebhookDelivery, error)
}
