package upload

import (
	"context"
	"fmt"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/google/uuid"
)

// UploadFile validates blob, stores it, signs a download URL for it and
// notifies the webhook. Only validation and storage failures are returned;
// notification failures are logged.
func (u *uploadService) UploadFile(ctx context.Context, identity domain.Identity, blob domain.Blob) (*domain.UploadResult, error) {

	if !IsAllowedMimeType(blob.ContentType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, blob.ContentType)
	}

	if blob.Size > u.uploadCfg.MaxSize {
		return nil, domain.ErrFileSizeTooBig
	}

	// the client going away must not abort a write already in flight
	ctx = context.WithoutCancel(ctx)

	key, err := u.store.Store(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}

	uploadedAt, ok := domain.ObjectKeyTime(key)
	if !ok {
		uploadedAt = time.Now().UTC()
	}

	obj := domain.UploadedObject{
		ID:           uuid.New(),
		Key:          key,
		OriginalName: blob.OriginalName,
		ContentType:  blob.ContentType,
		SizeBytes:    blob.Size,
		OwnerID:      identity.ID,
		OwnerEmail:   identity.Email,
		Location:     u.store.Location(key),
		UploadedAt:   uploadedAt,
	}
	u.logger.Info("object stored", "key", key, "size", blob.Size, "content_type", blob.ContentType)

	u.record(ctx, obj)

	signed, err := u.store.SignForRead(ctx, key)
	if err != nil {
		// the object stays in the bucket
		return nil, fmt.Errorf("%w: could not sign %s: %w", domain.ErrStorageFailure, key, err)
	}

	if notifyErr := u.notifier.Notify(ctx, domain.NewWebhookPayload(obj, *signed)); notifyErr != nil {
		u.logger.Warn("webhook notification failed", "key", key, "error", notifyErr)
	}

	return &domain.UploadResult{Object: obj, SignedURL: signed}, nil
}

// record writes obj to upload history and publishes its event. Both are best effort.
func (u *uploadService) record(ctx context.Context, obj domain.UploadedObject) {
	if u.history != nil {
		if err := u.history.Create(ctx, obj); err != nil {
			u.logger.Warn("failed to record upload history", "key", obj.Key, "error", err)
		}
	}

	if u.events != nil {
		if err := u.events.PublishUpload(ctx, domain.NewUploadEvent(obj)); err != nil {
			u.logger.Warn("failed to publish upload event", "key", obj.Key, "error", err)
		}
	}
}
