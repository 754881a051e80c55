package auth

import (
	"errors"
	"fmt"
	"time"

	"upload-relay/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the session token claims, the subject carries the identity id
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IssueSession signs a session token for identity
func (a *authService) IssueSession(identity domain.Identity) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(a.cfg.SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: identity.Email,
		Name:  identity.Name,
	})

	signed, err := token.SignedString([]byte(a.cfg.SessionSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// ResolveSession verifies token and returns the identity it embeds
func (a *authService) ResolveSession(tokenString string) (*domain.Identity, error) {
	if tokenString == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(a.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, domain.ErrInvalidSession
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSession, err)
	}

	// the only account is the configured admin, a token for anyone else
	// predates a credential change
	if id != a.admin.ID {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSession, errors.New("unknown subject"))
	}

	return &domain.Identity{ID: id, Email: claims.Email, Name: claims.Name}, nil
}
