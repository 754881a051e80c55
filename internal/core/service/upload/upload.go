package upload

import (
	"log/slog"
	"mime"

	"upload-relay/internal/config"
	"upload-relay/internal/core/port"
)

type uploadService struct {
	store     port.ObjectStore
	notifier  port.Notifier
	events    port.EventPublisher
	history   port.UploadRepository
	uploadCfg config.FileUploadConfig
	logger    *slog.Logger
}

// NewUploadService creates a new upload service.
// events and history are optional and may be nil.
func NewUploadService(store port.ObjectStore, notifier port.Notifier, events port.EventPublisher, history port.UploadRepository, cfg config.FileUploadConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		store:     store,
		notifier:  notifier,
		events:    events,
		history:   history,
		uploadCfg: cfg,
		logger:    logger,
	}
}

// AllowedMimeTypes is the whitelist of accepted upload MIME types
var AllowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"application/pdf": {},
}

// IsAllowedMimeType reports whether contentType is one of AllowedMimeTypes.
// Parameters such as charset are ignored.
func IsAllowedMimeType(contentType string) bool {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	_, ok := AllowedMimeTypes[mimeType]
	return ok
}
