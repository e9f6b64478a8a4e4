package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/paylane/paylane-go/internal/domain"
)

func TestRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewRepo()
	p := domain.PrincipalFromAPIKey("k")
	name := "Ada"
	s := domain.Session{
		ID:            "cks_1",
		Principal:     p,
		Request:       []byte(`{"product_cart":[]}`),
		CustomerName:  &name,
		PaymentStatus: domain.PaymentStatusRequiresPaymentMethod,
		CreatedAt:     time.Unix(10, 0).UTC(),
	}
	if err := r.Create(ctx, s); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	name = "mutated"
	s.Request[0] = '['

	got, err := r.Get(ctx, p, "cks_1")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if *got.CustomerName != "Ada" || string(got.Request) != `{"product_cart":[]}` {
		t.Fatalf("stored session aliased caller memory: %+v", got)
	}
	*got.CustomerName = "changed"
	again, _ := r.Get(ctx, p, "cks_1")
	if *again.CustomerName != "Ada" {
		t.Fatalf("Get leaked internal storage")
	}
}
