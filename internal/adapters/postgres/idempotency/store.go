package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

// Store keeps idempotency entries in the idempotency_keys table.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Lookup(ctx context.Context, scope idempotency.Scope) (idempotency.Entry, bool, error) {
	if !scope.Valid() {
		return idempotency.Entry{}, false, idempotency.ErrInvalidScope
	}
	var (
		e         idempotency.Entry
		sessionID string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT request_hash, session_id, response, stored_at
		FROM idempotency_keys
		WHERE principal = $1 AND idempotency_key = $2 AND operation = $3
	`, string(scope.Principal), string(scope.Key), scope.Operation).
		Scan(&e.RequestHash, &sessionID, &e.Response, &e.StoredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return idempotency.Entry{}, false, nil
	}
	if err != nil {
		return idempotency.Entry{}, false, fmt.Errorf("lookup idempotency key: %w", err)
	}
	e.SessionID = domain.SessionID(sessionID)
	e.StoredAt = e.StoredAt.UTC()
	return e, true, nil
}

func (s *Store) Save(ctx context.Context, scope idempotency.Scope, e idempotency.Entry) (bool, error) {
	if !scope.Valid() {
		return false, idempotency.ErrInvalidScope
	}
	resp := e.Response
	if resp == nil {
		resp = []byte{}
	}
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO idempotency_keys (principal, idempotency_key, operation, request_hash, session_id, response, stored_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (principal, idempotency_key, operation) DO NOTHING
	`,
		string(scope.Principal),
		string(scope.Key),
		scope.Operation,
		e.RequestHash,
		string(e.SessionID),
		resp,
		e.StoredAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("save idempotency key: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM idempotency_keys WHERE stored_at < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge idempotency keys: %w", err)
	}
	return tag.RowsAffected(), nil
}
