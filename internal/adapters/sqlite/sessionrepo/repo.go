package sessionrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/paylane/paylane-go/internal/adapters/sqlite"
	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

// Repo is a sqlite implementation of sessionrepo.Repository. Timestamps are stored
// as Unix nanoseconds.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	if r.db == nil {
		return errors.New("nil sqlite db")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checkout_sessions (
			id, principal, request,
			customer_email, customer_name, payment_id, payment_status,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		string(s.ID),
		string(s.Principal),
		string(s.Request),
		nullString(s.CustomerEmail),
		nullString(s.CustomerName),
		nullString(s.PaymentID),
		string(s.PaymentStatus),
		s.CreatedAt.UnixNano(),
		s.UpdatedAt.UnixNano(),
	)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return sessionrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (domain.Session, error) {
	if r.db == nil {
		return domain.Session{}, errors.New("nil sqlite db")
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id, principal, request,
		       customer_email, customer_name, payment_id, payment_status,
		       created_at, updated_at
		FROM checkout_sessions
		WHERE id = ? AND principal = ?
	`, string(id), string(principal))

	var (
		rawID, rawPrin, request, status string
		email, name, paymentID          sql.NullString
		createdAt, updatedAt            int64
	)
	if err := row.Scan(&rawID, &rawPrin, &request, &email, &name, &paymentID, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, sessionrepo.ErrNotFound
		}
		return domain.Session{}, err
	}
	return domain.Session{
		ID:            domain.SessionID(rawID),
		Principal:     domain.PrincipalID(rawPrin),
		Request:       []byte(request),
		CustomerEmail: stringPtr(email),
		CustomerName:  stringPtr(name),
		PaymentID:     stringPtr(paymentID),
		PaymentStatus: domain.PaymentStatus(status),
		CreatedAt:     time.Unix(0, createdAt).UTC(),
		UpdatedAt:     time.Unix(0, updatedAt).UTC(),
	}, nil
}

func (r *Repo) Update(ctx context.Context, s domain.Session) error {
	if r.db == nil {
		return errors.New("nil sqlite db")
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE checkout_sessions
		SET customer_email = ?,
		    customer_name = ?,
		    payment_id = ?,
		    payment_status = ?,
		    updated_at = ?
		WHERE id = ? AND principal = ?
	`,
		nullString(s.CustomerEmail),
		nullString(s.CustomerName),
		nullString(s.PaymentID),
		string(s.PaymentStatus),
		s.UpdatedAt.UnixNano(),
		string(s.ID),
		string(s.Principal),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sessionrepo.ErrNotFound
	}
	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
