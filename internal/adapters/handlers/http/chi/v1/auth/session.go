package auth

import (
	"net/http"

	"upload-relay/internal/core/domain"

	"github.com/go-chi/render"
)

// V1SessionResponse describes the current session
type V1SessionResponse struct {
	User V1User `json:"user"`
}

func (h *HandlerV1) SessionV1(w http.ResponseWriter, r *http.Request) {
	identity, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, V1MessageResponse{Message: "Unauthorized"})
		return
	}

	render.JSON(w, r, V1SessionResponse{User: V1User{
		ID:    identity.ID.String(),
		Email: identity.Email,
		Name:  identity.Name,
	}})
}
