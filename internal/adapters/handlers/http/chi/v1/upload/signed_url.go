package upload

import (
	"errors"
	"net/http"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// V1SignedURLRequest asks for a download url of a stored key
type V1SignedURLRequest struct {
	FileName string `json:"fileName"`
}

// V1SignedURLResponse carries the download url
type V1SignedURLResponse struct {
	Success   bool      `json:"success"`
	FileName  string    `json:"fileName"`
	SignedURL string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
	Message   string    `json:"message"`
}

func (h *HandlerV1) SignedURLV1(w http.ResponseWriter, r *http.Request) {
	var req V1SignedURLRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.Debug("error decoding signed url request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid request body"})
		return
	}

	signed, err := h.uploadService.SignDownloadURL(r.Context(), req.FileName)
	switch {
	case errors.Is(err, domain.ErrMissingFileName):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "fileName is required"})
		return
	case err != nil:
		h.logger.Error("error generating signed url", "file", req.FileName, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1FailureResponse{
			Success: false,
			Message: "Failed to generate signed URL",
			Error:   err.Error(),
		})
		return
	default:
		render.JSON(w, r, V1SignedURLResponse{
			Success:   true,
			FileName:  req.FileName,
			SignedURL: signed.URL,
			ExpiresAt: signed.ExpiresAt,
			Message:   "Signed URL generated successfully",
		})
	}
}
