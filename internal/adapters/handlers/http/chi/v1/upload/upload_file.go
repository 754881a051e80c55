package upload

import (
	"errors"
	"net/http"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// V1UploadFileResponse is returned once the file is stored and signed
type V1UploadFileResponse struct {
	Message   string    `json:"message"`
	FileName  string    `json:"fileName"`
	SignedURL string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	identity, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, V1MessageResponse{Message: "Unauthorized"})
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, V1MessageResponse{Message: h.fileTooBigMessage()})
			return
		}
		h.logger.Debug("error parsing multipart form", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "No file provided"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "No file provided"})
		return
	}
	defer file.Close()

	blob := domain.Blob{
		Body:         file,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
	}

	result, uploadErr := h.uploadService.UploadFile(r.Context(), identity, blob)
	switch {
	case errors.Is(uploadErr, domain.ErrInvalidFileType):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid file type. Only PDF and image files are allowed."})
		return
	case errors.Is(uploadErr, domain.ErrFileSizeTooBig):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: h.fileTooBigMessage()})
		return
	case uploadErr != nil:
		h.logger.Error("error uploading file", "file", header.Filename, "error", uploadErr)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1MessageResponse{Message: "Internal server error"})
		return
	default:
		render.JSON(w, r, V1UploadFileResponse{
			Message:   "File uploaded successfully",
			FileName:  result.Object.Key,
			SignedURL: result.SignedURL.URL,
			ExpiresAt: result.SignedURL.ExpiresAt,
		})
	}
}
