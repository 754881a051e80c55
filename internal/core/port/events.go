package port

import (
	"context"

	"upload-relay/internal/core/domain"
)

// EventPublisher is an interface to define an upload event publisher (nats, kafka, ...)
type EventPublisher interface {
	PublishUpload(ctx context.Context, event domain.UploadEvent) error
	Close() error
}
