package webhook

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HandlerV1 is the handler for the v1 webhook test route
type HandlerV1 struct {
	webhookService port.WebhookService
	logger         *slog.Logger
}

// NewWebhookHandlerV1 creates HandlerV1
func NewWebhookHandlerV1(service port.WebhookService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		webhookService: service,
		logger:         logger,
	}
}

// Routes exposes handler routes. Callers mount them behind the session guard.
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.TestWebhookV1)

	return router
}

// V1TestWebhookResponse mirrors the receiver answer
type V1TestWebhookResponse struct {
	Success    bool   `json:"success"`
	Status     int    `json:"status,omitempty"`
	StatusText string `json:"statusText,omitempty"`
	Message    string `json:"message"`
	Response   string `json:"response,omitempty"`
	Error      string `json:"error,omitempty"`
}

// TestWebhookV1 sends the request body, merged over a test payload, to the
// webhook receiver. An empty body is allowed.
func (h *HandlerV1) TestWebhookV1(w http.ResponseWriter, r *http.Request) {
	identity, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, V1TestWebhookResponse{Message: "Unauthorized"})
		return
	}

	body := map[string]any{}
	if err := render.DecodeJSON(r.Body, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("error decoding webhook test request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1TestWebhookResponse{Message: "Invalid request body"})
		return
	}

	delivery, err := h.webhookService.TestWebhook(r.Context(), identity, body)
	switch {
	case err != nil:
		h.logger.Error("webhook test failed", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1TestWebhookResponse{
			Success: false,
			Message: "Webhook test failed",
			Error:   err.Error(),
		})
	case !delivery.OK():
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1TestWebhookResponse{
			Success:    false,
			Status:     delivery.StatusCode,
			StatusText: delivery.StatusText,
			Message:    "Webhook call failed",
		})
	default:
		render.JSON(w, r, V1TestWebhookResponse{
			Success:  true,
			Status:   delivery.StatusCode,
			Message:  "Webhook called successfully",
			Response: delivery.Body,
		})
	}
}
