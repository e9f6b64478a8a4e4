package sessionrepo

import (
	"bytes"
	"context"
	"sync"

	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

// Repo is an in-memory implementation of sessionrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.SessionID]domain.Session
}

func NewRepo() *Repo {
	return &Repo{
		byID: make(map[domain.SessionID]domain.Session),
	}
}

func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; ok {
		return sessionrepo.ErrAlreadyExists
	}
	r.byID[s.ID] = cloneSession(s)
	return nil
}

func (r *Repo) Get(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (domain.Session, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok || s.Principal != principal {
		return domain.Session{}, sessionrepo.ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *Repo) Update(ctx context.Context, s domain.Session) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[s.ID]
	if !ok || existing.Principal != s.Principal {
		return sessionrepo.ErrNotFound
	}
	// The request body and creation time are immutable.
	s.Request = existing.Request
	s.CreatedAt = existing.CreatedAt
	r.byID[s.ID] = cloneSession(s)
	return nil
}

func cloneSession(s domain.Session) domain.Session {
	out := s
	out.Request = bytes.Clone(s.Request)
	out.CustomerEmail = cloneString(s.CustomerEmail)
	out.CustomerName = cloneString(s.CustomerName)
	out.PaymentID = cloneString(s.PaymentID)
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
