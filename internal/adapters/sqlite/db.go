// Package sqlite opens the single-file storage backend of the fake provider.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
)

// Open opens the database at path and applies migrations. ":memory:" gives a private
// in-memory database; it is pinned to one connection so every query sees it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("missing sqlite path (SQLITE_PATH)")
	}
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_checkout_sessions",
			Up: []string{`
				CREATE TABLE checkout_sessions (
					id             TEXT PRIMARY KEY,
					principal      TEXT NOT NULL,
					request        TEXT NOT NULL,
					customer_email TEXT,
					customer_name  TEXT,
					payment_id     TEXT,
					payment_status TEXT NOT NULL,
					created_at     INTEGER NOT NULL,
					updated_at     INTEGER NOT NULL
				)`,
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
					response        BLOB NOT NULL,
					stored_at       INTEGER NOT NULL,
					PRIMARY KEY (principal, idempotency_key, operation)
				)`,
				`CREATE INDEX idempotency_keys_stored_at_idx ON idempotency_keys (stored_at)`,
			},
			Down: []string{`DROP TABLE idempotency_keys`},
		},
	},
}

// Migrate applies pending schema migrations and returns how many ran.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	n, err := migrate.ExecContext(ctx, db, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return n, fmt.Errorf("migrate sqlite: %w", err)
	}
	return n, nil
}
