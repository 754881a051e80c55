package upload

import (
	"fmt"
	"log/slog"

	"upload-relay/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// maxMultipartMemory is the part of a multipart form kept in memory, the rest spills to disk
const maxMultipartMemory = 32 << 20

// HandlerV1 is the handler for v1 upload routes
type HandlerV1 struct {
	uploadService port.UploadService
	maxUploadSize int64
	logger        *slog.Logger
}

// NewUploadHandlerV1 creates HandlerV1. maxUploadSize is only used to word
// error messages, the limit itself is enforced by the service.
func NewUploadHandlerV1(service port.UploadService, maxUploadSize int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Routes exposes handler routes. Callers mount them behind the session guard.
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadFileV1)
	router.Post("/signed-url", h.SignedURLV1)
	router.Post("/upload-url", h.UploadURLV1)
	router.Get("/uploads", h.ListUploadsV1)

	return router
}

// V1MessageResponse is the body of plain error answers
type V1MessageResponse struct {
	Message string `json:"message"`
}

// V1FailureResponse is the error body of the signing endpoints
type V1FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (h *HandlerV1) fileTooBigMessage() string {
	return "File size must be less than " + formatSize(h.maxUploadSize)
}

// formatSize renders n in the largest binary unit that divides it evenly
func formatSize(n int64) string {
	switch {
	case n >= 1<<30 && n%(1<<30) == 0:
		return fmt.Sprintf("%dGB", n>>30)
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
