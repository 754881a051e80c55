package upload

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// V1Upload is one entry of the upload history
type V1Upload struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Location     string    `json:"location"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// V1ListUploadsResponse lists the caller's uploads, newest first
type V1ListUploadsResponse struct {
	Uploads []V1Upload `json:"uploads"`
}

func (h *HandlerV1) ListUploadsV1(w http.ResponseWriter, r *http.Request) {
	identity, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, V1MessageResponse{Message: "Unauthorized"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, V1MessageResponse{Message: "limit must be a number"})
			return
		}
		limit = parsed
	}

	uploads, err := h.uploadService.ListUploads(r.Context(), identity, limit)
	switch {
	case errors.Is(err, domain.ErrUploadHistoryDisabled):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, V1MessageResponse{Message: "Upload history is not enabled"})
		return
	case err != nil:
		h.logger.Error("error listing uploads", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1MessageResponse{Message: "Internal server error"})
		return
	}

	resp := V1ListUploadsResponse{Uploads: make([]V1Upload, 0, len(uploads))}
	for _, u := range uploads {
		resp.Uploads = append(resp.Uploads, V1Upload{
			ID:           u.ID.String(),
			FileName:     u.Key,
			OriginalName: u.OriginalName,
			ContentType:  u.ContentType,
			Size:         u.SizeBytes,
			Location:     u.Location,
			UploadedAt:   u.UploadedAt,
		})
	}
	render.JSON(w, r, resp)
}
