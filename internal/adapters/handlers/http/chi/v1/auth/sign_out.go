package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// SignOutV1 clears the session cookie. Tokens are stateless, a copied token
// stays valid until it expires.
func (h *HandlerV1) SignOutV1(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	render.JSON(w, r, V1MessageResponse{Message: "Signed out successfully"})
}
