package sessionrepo

import (
	"context"

	"github.com/paylane/paylane-go/internal/domain"
)

// Repository persists checkout sessions.
//
// Sessions are scoped to the principal that created them: Get and Update return
// ErrNotFound for a session owned by another principal.
type Repository interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (domain.Session, error)

	// Update replaces the mutable status columns of an existing session.
	Update(ctx context.Context, s domain.Session) error
}
