package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"upload-relay/internal/core/domain"
)

// SignDownloadURL returns a signed GET URL for fileName
func (u *uploadService) SignDownloadURL(ctx context.Context, fileName string) (*domain.SignedURL, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, domain.ErrMissingFileName
	}

	signed, err := u.store.SignForRead(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return signed, nil
}

// SignUploadURL returns a signed POST policy a client can upload directly to.
// The policy pins the content type and caps the size at the configured upload limit.
func (u *uploadService) SignUploadURL(ctx context.Context, fileName string, contentType string) (*domain.SignedURL, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, domain.ErrMissingFileName
	}
	if !IsAllowedMimeType(contentType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidFileType, contentType)
	}

	key := domain.NewObjectKey(time.Now(), fileName)
	signed, err := u.store.SignForWrite(ctx, key, contentType, u.uploadCfg.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return signed, nil
}
