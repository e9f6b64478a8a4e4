package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paylane/paylane-go/internal/domain"
	idempotencyport "github.com/paylane/paylane-go/internal/ports/out/idempotency"
	sessionrepoport "github.com/paylane/paylane-go/internal/ports/out/sessionrepo"
)

type CleanupFunc = func()

type SessionRepoFactory func(t *testing.T) (sessionrepoport.Repository, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

// RunIdempotencyStore checks scoping, first-writer-wins saves and purging. Entries
// are stamped in 1990 so Purge cannot touch rows written by other suites sharing
// the database.
func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	base := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	scope := idempotencyport.Scope{
		Principal: domain.PrincipalFromAPIKey("sk_contract"),
		Key:       idempotencyport.Key("k-" + uuid.NewString()),
		Operation: idempotencyport.OperationCreateCheckoutSession,
	}
	if _, ok, err := store.Lookup(ctx, scope); err != nil || ok {
		t.Fatalf("Lookup before Save: ok=%v err=%v", ok, err)
	}

	first := idempotencyport.Entry{
		RequestHash: "hash-abc",
		SessionID:   domain.NewSessionID(),
		Response:    []byte(`{"session_id":"cks_1"}`),
		StoredAt:    base,
	}
	if ok, err := store.Save(ctx, scope, first); err != nil || !ok {
		t.Fatalf("Save: ok=%v err=%v", ok, err)
	}
	got, ok, err := store.Lookup(ctx, scope)
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if got.RequestHash != first.RequestHash || got.SessionID != first.SessionID || string(got.Response) != string(first.Response) {
		t.Fatalf("Lookup()=%+v, want %+v", got, first)
	}
	if !got.StoredAt.Equal(base) {
		t.Fatalf("StoredAt=%v, want %v", got.StoredAt, base)
	}

	// The first writer wins.
	second := first
	second.RequestHash = "hash-def"
	if ok, err := store.Save(ctx, scope, second); err != nil || ok {
		t.Fatalf("second Save: ok=%v err=%v, want ok=false", ok, err)
	}
	if got, _, _ := store.Lookup(ctx, scope); got.RequestHash != "hash-abc" {
		t.Fatalf("second Save replaced the entry: %+v", got)
	}

	// Every scope component participates in the lookup.
	variants := []idempotencyport.Scope{scope, scope, scope}
	variants[0].Principal = domain.PrincipalFromAPIKey("sk_other")
	variants[1].Key = idempotencyport.Key("k-" + uuid.NewString())
	variants[2].Operation = "refunds.create"
	for _, v := range variants {
		if _, ok, err := store.Lookup(ctx, v); err != nil || ok {
			t.Fatalf("Lookup(%+v): ok=%v err=%v, want miss", v, ok, err)
		}
	}

	if _, _, err := store.Lookup(ctx, idempotencyport.Scope{Operation: "x"}); !errors.Is(err, idempotencyport.ErrInvalidScope) {
		t.Fatalf("Lookup incomplete scope err=%v, want ErrInvalidScope", err)
	}

	// Purge drops entries older than the cutoff only.
	fresh := variants[1]
	if ok, err := store.Save(ctx, fresh, idempotencyport.Entry{RequestHash: "h", StoredAt: base.Add(time.Hour)}); err != nil || !ok {
		t.Fatalf("Save fresh: ok=%v err=%v", ok, err)
	}
	n, err := store.Purge(ctx, base.Add(time.Minute))
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if n < 1 {
		t.Fatalf("Purge removed %d entries, want at least 1", n)
	}
	if _, ok, _ := store.Lookup(ctx, scope); ok {
		t.Fatalf("purged entry still present")
	}
	if _, ok, _ := store.Lookup(ctx, fresh); !ok {
		t.Fatalf("entry newer than cutoff was purged")
	}

	// A purged scope can be claimed again.
	if ok, err := store.Save(ctx, scope, second); err != nil || !ok {
		t.Fatalf("Save after purge: ok=%v err=%v", ok, err)
	}
}

func RunSessionRepo(t *testing.T, newRepo SessionRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Unix(1000, 0).UTC()
	owner := domain.PrincipalFromAPIKey("sk_owner")
	email := "ada@example.com"
	s := domain.Session{
		ID:            domain.NewSessionID(),
		Principal:     owner,
		Request:       []byte(`{"product_cart":[{"product_id":"pdt_1","quantity":1}]}`),
		CustomerEmail: &email,
		PaymentStatus: domain.PaymentStatusRequiresPaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, s); !errors.Is(err, sessionrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.Get(ctx, owner, s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != s.ID || got.Principal != owner || got.PaymentStatus != s.PaymentStatus {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.CustomerEmail == nil || *got.CustomerEmail != email || got.CustomerName != nil || got.PaymentID != nil {
		t.Fatalf("optional columns not preserved: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt=%v, want %v", got.CreatedAt, now)
	}
	if !jsonEquivalent(got.Request, s.Request) {
		t.Fatalf("Request=%s, want %s", got.Request, s.Request)
	}

	// Sessions are scoped to their principal.
	if _, err := repo.Get(ctx, domain.PrincipalFromAPIKey("sk_intruder"), s.ID); !errors.Is(err, sessionrepoport.ErrNotFound) {
		t.Fatalf("Get other principal err=%v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, owner, domain.NewSessionID()); !errors.Is(err, sessionrepoport.ErrNotFound) {
		t.Fatalf("Get missing err=%v, want ErrNotFound", err)
	}

	// Update changes status columns only.
	paymentID := "pay_" + uuid.NewString()
	upd := got
	upd.PaymentID = &paymentID
	upd.PaymentStatus = domain.PaymentStatusSucceeded
	upd.UpdatedAt = now.Add(time.Minute)
	upd.Request = []byte(`{"ignored":true}`)
	if err := repo.Update(ctx, upd); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.Get(ctx, owner, s.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.PaymentStatus != domain.PaymentStatusSucceeded || got.PaymentID == nil || *got.PaymentID != paymentID {
		t.Fatalf("update not applied: %+v", got)
	}
	if !got.UpdatedAt.Equal(now.Add(time.Minute)) || !got.CreatedAt.Equal(now) {
		t.Fatalf("timestamps: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}
	if !jsonEquivalent(got.Request, s.Request) {
		t.Fatalf("Update must not replace the request body, got %s", got.Request)
	}

	missing := upd
	missing.ID = domain.NewSessionID()
	if err := repo.Update(ctx, missing); !errors.Is(err, sessionrepoport.ErrNotFound) {
		t.Fatalf("Update missing err=%v, want ErrNotFound", err)
	}
	stolen := upd
	stolen.Principal = domain.PrincipalFromAPIKey("sk_intruder")
	if err := repo.Update(ctx, stolen); !errors.Is(err, sessionrepoport.ErrNotFound) {
		t.Fatalf("Update other principal err=%v, want ErrNotFound", err)
	}
}
