// Package testutil opens throwaway sqlite databases for adapter tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/paylane/paylane-go/internal/adapters/sqlite"
)

func OpenMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
