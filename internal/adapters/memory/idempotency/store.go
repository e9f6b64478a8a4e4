package idempotency

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

// Store keeps idempotency entries in a map. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[idempotency.Scope]idempotency.Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[idempotency.Scope]idempotency.Entry)}
}

func (s *Store) Lookup(_ context.Context, scope idempotency.Scope) (idempotency.Entry, bool, error) {
	if !scope.Valid() {
		return idempotency.Entry{}, false, idempotency.ErrInvalidScope
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[scope]
	if !ok {
		return idempotency.Entry{}, false, nil
	}
	e.Response = bytes.Clone(e.Response)
	return e, true, nil
}

func (s *Store) Save(_ context.Context, scope idempotency.Scope, e idempotency.Entry) (bool, error) {
	if !scope.Valid() {
		return false, idempotency.ErrInvalidScope
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.entries[scope]; taken {
		return false, nil
	}
	e.Response = bytes.Clone(e.Response)
	s.entries[scope] = e
	return true, nil
}

func (s *Store) Purge(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for scope, e := range s.entries {
		if e.StoredAt.Before(cutoff) {
			delete(s.entries, scope)
			n++
		}
	}
	return n, nil
}
