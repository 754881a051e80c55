package port

import (
	"time"

	"upload-relay/internal/core/domain"
)

// AuthService validates admin credentials and issues/resolves session tokens
type AuthService interface {
	ValidateCredentials(email, password string) *domain.Identity
	IssueSession(identity domain.Identity) (token string, expiresAt time.Time, err error)
	ResolveSession(token string) (*domain.Identity, error)
}
