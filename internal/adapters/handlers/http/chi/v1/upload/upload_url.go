package upload

import (
	"errors"
	"net/http"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// V1UploadURLRequest asks for a direct upload url
type V1UploadURLRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// V1UploadURLResponse carries a presigned POST policy. The client posts a
// multipart form to UploadURL with every entry of Fields followed by the file.
// The store rejects any other content type and any file larger than MaxSize.
type V1UploadURLResponse struct {
	Success   bool              `json:"success"`
	FileName  string            `json:"fileName"`
	Method    string            `json:"method"`
	UploadURL string            `json:"uploadUrl"`
	Fields    map[string]string `json:"fields"`
	MaxSize   int64             `json:"maxSize"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Message   string            `json:"message"`
}

func (h *HandlerV1) UploadURLV1(w http.ResponseWriter, r *http.Request) {
	var req V1UploadURLRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.Debug("error decoding upload url request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid request body"})
		return
	}

	signed, err := h.uploadService.SignUploadURL(r.Context(), req.FileName, req.ContentType)
	switch {
	case errors.Is(err, domain.ErrMissingFileName):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "fileName is required"})
		return
	case errors.Is(err, domain.ErrInvalidFileType):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid file type. Only PDF and image files are allowed."})
		return
	case err != nil:
		h.logger.Error("error generating upload url", "file", req.FileName, "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1FailureResponse{
			Success: false,
			Message: "Failed to generate upload URL",
			Error:   err.Error(),
		})
		return
	default:
		render.JSON(w, r, V1UploadURLResponse{
			Success:   true,
			FileName:  signed.Key,
			Method:    signed.Method,
			UploadURL: signed.URL,
			Fields:    signed.Fields,
			MaxSize:   h.maxUploadSize,
			ExpiresAt: signed.ExpiresAt,
			Message:   "Upload URL generated successfully",
		})
	}
}
