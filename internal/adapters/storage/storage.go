package storage

import (
	"context"
	"fmt"
	"log/slog"

	"upload-relay/internal/adapters/storage/minio"
	"upload-relay/internal/adapters/storage/s3"
	"upload-relay/internal/config"
	"upload-relay/internal/core/port"
)

// New builds the object store selected by cfg.Driver
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (port.ObjectStore, error) {
	logger = logger.With("driver", string(cfg.Driver), "bucket", cfg.BucketName)

	switch cfg.Driver {
	case config.StorageDriverS3:
		adapter, err := s3.NewAdapter(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	case config.StorageDriverMinio:
		adapter, err := minio.NewAdapter(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
