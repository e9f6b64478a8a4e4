package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_checkout_sessions",
			Up: []string{`
				CREATE TABLE checkout_sessions (
					id             TEXT PRIMARY KEY,
					principal      TEXT NOT NULL,
					request        JSONB NOT NULL,
					customer_email TEXT,
					customer_name  TEXT,
					payment_id     TEXT,
					payment_status TEXT NOT NULL,
					created_at     TIMESTAMPTZ NOT NULL,
					updated_at     TIMESTAMPTZ NOT NULL
				)`,
				`CREATE INDEX checkout_sessions_principal_idx ON checkout_sessions (principal, created_at)`,
			},
			Down: []string{`DROP TABLE checkout_sessions`},
		},
		{
			Id: "0002_idempotency_keys",
			Up: []string{`
				CREATE TABLE idempotency_keys (
					principal       TEXT NOT NULL,
					idempotency_key TEXT NOT NULL,
					operation       TEXT NOT NULL,
					request_hash    TEXT NOT NULL,
					session_id      TEXT NOT NULL,
					response        BYTEA NOT NULL,
					stored_at       TIMESTAMPTZ NOT NULL,
					PRIMARY KEY (principal, idempotency_key, operation)
				)`,
				`CREATE INDEX idempotency_keys_stored_at_idx ON idempotency_keys (stored_at)`,
			},
			Down: []string{`DROP TABLE idempotency_keys`},
		},
	},
}

// Migrate applies pending schema migrations and returns how many ran.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrate.ExecContext(ctx, db, "postgres", migrations, migrate.Up)
	if err != nil {
		return n, fmt.Errorf("migrate postgres: %w", err)
	}
	return n, nil
}
