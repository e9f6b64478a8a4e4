// Package idempotency is the port through which the fake provider remembers the
// outcome of requests sent with an Idempotency-Key header.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/paylane/paylane-go/internal/domain"
)

// Key is the caller-provided Idempotency-Key header value.
type Key string

// OperationCreateCheckoutSession scopes keys used on POST /checkouts.
const OperationCreateCheckoutSession = "checkout_sessions.create"

// ErrInvalidScope is returned for a Scope with an empty key or principal.
var ErrInvalidScope = errors.New("idempotency: incomplete scope")

// Scope is the namespace a key lives in. The same key sent by two principals, or
// for two operations, names two unrelated entries.
type Scope struct {
	Principal domain.PrincipalID
	Key       Key
	Operation string
}

func (s Scope) Valid() bool { return s.Principal != "" && s.Key != "" && s.Operation != "" }

// Entry is the remembered outcome of the first successful request under a Scope.
// RequestHash fingerprints the request body; a later request with another hash
// under the same scope is a key reuse.
type Entry struct {
	RequestHash string
	SessionID   domain.SessionID
	Response    []byte
	StoredAt    time.Time
}

// Store persists entries.
//
// Save is first-writer-wins: it stores e only when scope has no entry yet and
// reports whether it did. Purge drops entries stored before cutoff.
type Store interface {
	Lookup(ctx context.Context, scope Scope) (Entry, bool, error)
	Save(ctx context.Context, scope Scope, e Entry) (bool, error)
	Purge(ctx context.Context, cutoff time.Time) (int64, error)
}
