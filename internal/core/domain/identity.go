package domain

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated principal executing a request
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
}

type identityCtxKey struct{}

// ContextWithIdentity returns a copy of ctx carrying identity
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// IdentityFromContext returns the identity stored by ContextWithIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(Identity)
	return identity, ok
}
