package auth

import (
	"log/slog"

	"upload-relay/internal/config"
	"upload-relay/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 auth routes
type HandlerV1 struct {
	authService port.AuthService
	config      config.AuthConfig
	logger      *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1
func NewAuthHandlerV1(service port.AuthService, cfg config.AuthConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		config:      cfg,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signin", h.SignInV1)
	router.Post("/signout", h.SignOutV1)
	router.With(h.RequireSession).Get("/session", h.SessionV1)

	return router
}

// V1MessageResponse is the body of every error answer
type V1MessageResponse struct {
	Message string `json:"message"`
}

// V1User is the public view of an identity
type V1User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
