package context

import (
	"context"

	"github.com/Anotida-Much/task-manager/internal/model"
)

type ctxKey int

// identityKey is the context key the authenticated identity is stored
// under.
const identityKey ctxKey = iota

// Manager sets and retrieves the authenticated identity on request
// contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by the session
// guard, reporting whether one was present.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
