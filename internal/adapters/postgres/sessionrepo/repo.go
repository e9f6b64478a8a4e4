package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/paylane/paylane-go/internal/adapters/postgres"
	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

// Repo is a Postgres implementation of sessionrepo.Repository. The request body is
// stored as jsonb, so reads return it normalized rather than byte-for-byte.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO checkout_sessions (
			id, principal, request,
			customer_email, customer_name, payment_id, payment_status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		string(s.ID),
		string(s.Principal),
		string(s.Request),
		s.CustomerEmail,
		s.CustomerName,
		s.PaymentID,
		string(s.PaymentStatus),
		s.CreatedAt.UTC(),
		s.UpdatedAt.UTC(),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sessionrepo.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, principal domain.PrincipalID, id domain.SessionID) (domain.Session, error) {
	if r.pool == nil {
		return domain.Session{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, principal, request::text,
		       customer_email, customer_name, payment_id, payment_status,
		       created_at, updated_at
		FROM checkout_sessions
		WHERE id = $1 AND principal = $2
	`, string(id), string(principal))

	var (
		s       domain.Session
		rawID   string
		rawPrin string
		request string
		status  string
	)
	if err := row.Scan(
		&rawID, &rawPrin, &request,
		&s.CustomerEmail, &s.CustomerName, &s.PaymentID, &status,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, sessionrepo.ErrNotFound
		}
		return domain.Session{}, err
	}
	s.ID = domain.SessionID(rawID)
	s.Principal = domain.PrincipalID(rawPrin)
	s.Request = []byte(request)
	s.PaymentStatus = domain.PaymentStatus(status)
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func (r *Repo) Update(ctx context.Context, s domain.Session) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE checkout_sessions
		SET customer_email = $3,
		    customer_name = $4,
		    payment_id = $5,
		    payment_status = $6,
		    updated_at = $7
		WHERE id = $1 AND principal = $2
	`,
		string(s.ID),
		string(s.Principal),
		s.CustomerEmail,
		s.CustomerName,
		s.PaymentID,
		string(s.PaymentStatus),
		s.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sessionrepo.ErrNotFound
	}
	return nil
}
