package chi

import (
	"log/slog"
	"net/http"
	"time"

	"upload-relay/internal/adapters/handlers/http/chi/v1/auth"
	"upload-relay/internal/adapters/handlers/http/chi/v1/upload"
	"upload-relay/internal/adapters/handlers/http/chi/v1/webhook"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// multipartOverhead is allowed on top of the max upload size for the form envelope
const multipartOverhead = 1 << 20

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, authHandler *auth.HandlerV1, uploadHandler *upload.HandlerV1, webhookHandler *webhook.HandlerV1, env string, maxUploadSize int64) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(maxUploadSize + multipartOverhead))

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(authHandler.RequireSession)
			r.Mount("/webhook-test", webhookHandler.Routes())
			r.Mount("/", uploadHandler.Routes())
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		})
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
