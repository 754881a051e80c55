package port

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/google/uuid"
)

// UploadRepository is an interface to define upload history interactions
type UploadRepository interface {
	Create(ctx context.Context, obj domain.UploadedObject) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.UploadedObject, error)
}

// UploadService is an interface to define the upload pipeline
type UploadService interface {
	UploadFile(ctx context.Context, identity domain.Identity, blob domain.Blob) (*domain.UploadResult, error)
	SignDownloadURL(ctx context.Context, fileName string) (*domain.SignedURL, error)
	SignUploadURL(ctx context.Context, fileName string, contentType string) (*domain.SignedURL, error)
	ListUploads(ctx context.Context, identity domain.Identity, limit int) ([]domain.UploadedObject, error)
}

// WebhookService is an interface to define the webhook connectivity check
type WebhookService interface {
	TestWebhook(ctx context.Context, identity domain.Identity, body map[string]any) (*domain.WebhookDelivery, error)
}
