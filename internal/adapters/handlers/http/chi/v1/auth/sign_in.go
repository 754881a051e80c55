package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// V1SignInRequest is the credentials form
type V1SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// V1SignInResponse is returned on successful sign in. The token is also set as cookie.
type V1SignInResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      V1User    `json:"user"`
}

func (h *HandlerV1) SignInV1(w http.ResponseWriter, r *http.Request) {
	var req V1SignInRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.Debug("error decoding sign in request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid request body"})
		return
	}

	identity := h.authService.ValidateCredentials(req.Email, req.Password)
	if identity == nil {
		h.logger.Warn("sign in rejected", "email", req.Email)
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, V1MessageResponse{Message: "Invalid credentials"})
		return
	}

	token, expiresAt, err := h.authService.IssueSession(*identity)
	if err != nil {
		h.logger.Error("error issuing session", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, V1MessageResponse{Message: "Internal server error"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("signed in", "email", identity.Email)
	render.JSON(w, r, V1SignInResponse{
		Message:   "Signed in successfully",
		Token:     token,
		ExpiresAt: expiresAt,
		User: V1User{
			ID:    identity.ID.String(),
			Email: identity.Email,
			Name:  identity.Name,
		},
	})
}
