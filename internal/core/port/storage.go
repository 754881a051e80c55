package port

import (
	"context"

	"upload-relay/internal/core/domain"
)

// ObjectStore is an interface to define object store interactions.
// Each operation is a single remote call without retry.
type ObjectStore interface {
	Store(ctx context.Context, blob domain.Blob) (string, error)
	SignForRead(ctx context.Context, key string) (*domain.SignedURL, error)
	SignForWrite(ctx context.Context, key string, contentType string, maxSize int64) (*domain.SignedURL, error)
	Location(key string) string
}
