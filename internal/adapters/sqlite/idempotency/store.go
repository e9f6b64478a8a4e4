package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

// Store keeps idempotency entries in the idempotency_keys table. Times are stored
// as unix nanoseconds.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Lookup(ctx context.Context, scope idempotency.Scope) (idempotency.Entry, bool, error) {
	if !scope.Valid() {
		return idempotency.Entry{}, false, idempotency.ErrInvalidScope
	}
	var (
		e         idempotency.Entry
		sessionID string
		storedAt  int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT request_hash, session_id, response, stored_at
		FROM idempotency_keys
		WHERE principal = ? AND idempotency_key = ? AND operation = ?
	`, string(scope.Principal), string(scope.Key), scope.Operation).
		Scan(&e.RequestHash, &sessionID, &e.Response, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return idempotency.Entry{}, false, nil
	}
	if err != nil {
		return idempotency.Entry{}, false, fmt.Errorf("lookup idempotency key: %w", err)
	}
	e.SessionID = domain.SessionID(sessionID)
	e.StoredAt = time.Unix(0, storedAt).UTC()
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
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO idempotency_keys (principal, idempotency_key, operation, request_hash, session_id, response, stored_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (principal, idempotency_key, operation) DO NOTHING
	`,
		string(scope.Principal),
		string(scope.Key),
		scope.Operation,
		e.RequestHash,
		string(e.SessionID),
		resp,
		e.StoredAt.UnixNano(),
	)
	if err != nil {
		return false, fmt.Errorf("save idempotency key: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save idempotency key: %w", err)
	}
	return n == 1, nil
}

func (s *Store) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM idempotency_keys WHERE stored_at < ?`, cutoff.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("purge idempotency keys: %w", err)
	}
	return res.RowsAffected()
}
