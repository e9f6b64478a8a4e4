package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpen_MigratesOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fake.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	_ = db.Close()

	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	defer db.Close()
	n, err := Migrate(ctx, db)
	if err != nil || n != 0 {
		t.Fatalf("Migrate on migrated db n=%d err=%v", n, err)
	}
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checkout_sessions`).Scan(&count); err != nil {
		t.Fatalf("query err=%v", err)
	}
}

func TestOpen_RejectsEmptyPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
