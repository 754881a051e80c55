package auth

import (
	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/port"

	"github.com/google/uuid"
)

type authService struct {
	cfg   config.AuthConfig
	admin domain.Identity
}

// NewAuthService creates a new auth service for the configured admin account
func NewAuthService(cfg config.AuthConfig) port.AuthService {
	return &authService{
		cfg: cfg,
		admin: domain.Identity{
			ID:    AdminID(cfg.AdminEmail),
			Email: cfg.AdminEmail,
			Name:  cfg.AdminName,
		},
	}
}

// AdminID derives a stable identity id from the admin email
func AdminID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email))
}
