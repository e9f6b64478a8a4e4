package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paylane/paylane-go/internal/domain"
	"github.com/paylane/paylane-go/internal/ports/out/idempotency"
)

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore()
	scope := idempotency.Scope{
		Principal: domain.PrincipalFromAPIKey("sk_test"),
		Key:       "k1",
		Operation: idempotency.OperationCreateCheckoutSession,
	}
	resp := []byte(`{"session_id":"cks_1"}`)
	if ok, err := s.Save(ctx, scope, idempotency.Entry{RequestHash: "h", SessionID: "cks_1", Response: resp}); err != nil || !ok {
		t.Fatalf("Save() ok=%v err=%v", ok, err)
	}
	resp[0] = 'X'

	got, ok, err := s.Lookup(ctx, scope)
	if err != nil || !ok {
		t.Fatalf("Lookup() ok=%v err=%v", ok, err)
	}
	got.Response[1] = 'Y'

	again, _, _ := s.Lookup(ctx, scope)
	if string(again.Response) != `{"session_id":"cks_1"}` {
		t.Fatalf("stored response aliased caller memory: %s", again.Response)
	}
}

func TestStore_ConcurrentSaveHasOneWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStore()
	scope := idempotency.Scope{
		Principal: domain.PrincipalFromAPIKey("sk_test"),
		Key:       "race",
		Operation: idempotency.OperationCreateCheckoutSession,
	}

	const n = 16
	wins := make(chan bool, n)
	for i := 0; i < n; i++ {
		go func() {
			ok, _ := s.Save(ctx, scope, idempotency.Entry{RequestHash: "h", StoredAt: time.Unix(1, 0)})
			wins <- ok
		}()
	}
	won := 0
	for i := 0; i < n; i++ {
		if <-wins {
			won++
		}
	}
	if won != 1 {
		t.Fatalf("%d saves won, want exactly 1", won)
	}
}

func TestStore_RejectsIncompleteScope(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if _, err := s.Save(context.Background(), idempotency.Scope{Key: "k"}, idempotency.Entry{}); !errors.Is(err, idempotency.ErrInvalidScope) {
		t.Fatalf("Save() err=%v, want ErrInvalidScope", err)
	}
}
