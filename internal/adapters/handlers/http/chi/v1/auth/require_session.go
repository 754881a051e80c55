package auth

import (
	"net/http"
	"strings"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// RequireSession rejects the request with 401 unless it carries a valid
// session token, either as cookie or as bearer token. The resolved identity is
// stored in the request context.
func (h *HandlerV1) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.authService.ResolveSession(h.sessionToken(r))
		if err != nil {
			h.logger.Debug("session rejected", "path", r.URL.Path, "error", err)
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, V1MessageResponse{Message: "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r.WithContext(domain.ContextWithIdentity(r.Context(), *identity)))
	})
}

func (h *HandlerV1) sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(h.config.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ""
}
