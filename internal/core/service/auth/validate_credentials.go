package auth

import (
	"crypto/subtle"

	"upload-relay/internal/core/domain"
)

// ValidateCredentials returns the admin identity when email and password match
// the configured pair exactly, nil otherwise.
func (a *authService) ValidateCredentials(email, password string) *domain.Identity {
	if email == "" || password == "" {
		return nil
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.cfg.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return nil
	}

	identity := a.admin
	return &identity
}
