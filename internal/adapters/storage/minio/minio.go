package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.StorageConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewAdapter returns Adapter and creates the bucket when it does not exist yet
func NewAdapter(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Adapter, error) {
	endpoint, secure := splitEndpoint(cfg.Endpoint, cfg.UseSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info("bucket created", slog.String("bucket", cfg.BucketName))
	}

	return &Adapter{client: client, config: cfg, logger: logger, now: time.Now}, nil
}

// splitEndpoint accepts both "host:port" and "scheme://host:port"
func splitEndpoint(endpoint string, useSSL bool) (string, bool) {
	if !strings.Contains(endpoint, "://") {
		return endpoint, useSSL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint, useSSL
	}
	return u.Host, u.Scheme == "https"
}

// Store writes blob under a freshly generated key
func (a *Adapter) Store(ctx context.Context, blob domain.Blob) (string, error) {
	key := domain.NewObjectKey(a.now(), blob.OriginalName)

	info, err := a.client.PutObject(ctx, a.config.BucketName, key, blob.Body, blob.Size, minio.PutObjectOptions{
		ContentType: blob.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("bucket", a.config.BucketName),
		slog.String("key", key),
		slog.Int64("size", info.Size))

	return key, nil
}

// SignForRead generates a presigned GET url for key
func (a *Adapter) SignForRead(ctx context.Context, key string) (*domain.SignedURL, error) {
	issuedAt := a.now()

	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, key, a.config.SignedURLDuration, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	return &domain.SignedURL{
		Key:       key,
		Method:    http.MethodGet,
		URL:       presignedURL.String(),
		ExpiresAt: issuedAt.Add(a.config.SignedURLDuration),
	}, nil
}

// SignForWrite generates a presigned POST policy for key bound to
// contentType and capped at maxSize bytes
func (a *Adapter) SignForWrite(ctx context.Context, key string, contentType string, maxSize int64) (*domain.SignedURL, error) {
	issuedAt := a.now()
	expiresAt := issuedAt.Add(a.config.SignedURLDuration)

	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(a.config.BucketName); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}
	if err := policy.SetKey(key); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}
	if err := policy.SetExpires(expiresAt.UTC()); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}
	if err := policy.SetContentType(contentType); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}
	if err := policy.SetContentLengthRange(0, maxSize); err != nil {
		return nil, fmt.Errorf("invalid upload policy: %w", err)
	}

	postURL, formData, err := a.client.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned upload policy: %w", err)
	}

	return &domain.SignedURL{
		Key:       key,
		Method:    http.MethodPost,
		URL:       postURL.String(),
		Fields:    formData,
		ExpiresAt: expiresAt,
	}, nil
}

// Location describes where key lives
func (a *Adapter) Location(key string) string {
	return fmt.Sprintf("minio://%s/%s", a.config.BucketName, key)
}
