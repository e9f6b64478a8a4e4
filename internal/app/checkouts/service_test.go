package checkouts

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/paylane/paylane-go/core"
	memclock "github.com/paylane/paylane-go/internal/adapters/memory/clock"
	memsessionrepo "github.com/paylane/paylane-go/internal/adapters/memory/sessionrepo"
	"github.com/paylane/paylane-go/internal/domain"
)

const validBody = `{"product_cart":[{"product_id":"pdt_1","quantity":1}],"customer":{"email":"ada@example.com","name":"  Ada   Lovelace "},"x_extra":1}`

func newTestService(t *testing.T) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(time.Unix(1700000000, 0).UTC())
	svc := NewService(memsessionrepo.NewRepo(), clk)
	svc.newPaymentID = func() string { return "pay_fixed" }
	return svc, clk
}

func TestService_CreateThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)
	p := domain.PrincipalFromAPIKey("sk_test")

	resp, err := svc.CreateSession(ctx, p, []byte(validBody))
	if err != nil {
		t.Fatalf("CreateSession err=%v", err)
	}
	if err := resp.Validate(); err != nil {
		t.Fatalf("response Validate err=%v", err)
	}
	idOpt, _ := resp.SessionID()
	id := idOpt.Value()
	if !strings.HasPrefix(id, "cks_") {
		t.Fatalf("session id=%q", id)
	}
	url, _ := resp.CheckoutURL()
	if url.Value() != "https://checkout.paylane.test/session/"+id {
		t.Fatalf("checkout url=%q", url.Value())
	}

	st, err := svc.GetSession(ctx, p, domain.SessionID(id))
	if err != nil {
		t.Fatalf("GetSession err=%v", err)
	}
	if err := st.Validate(); err != nil {
		t.Fatalf("status Validate err=%v", err)
	}
	name, _ := st.CustomerName()
	email, _ := st.CustomerEmail()
	if name.Value() != "Ada Lovelace" || email.Value() != "ada@example.com" {
		t.Fatalf("customer name=%q email=%q", name.Value(), email.Value())
	}
	paymentID, _ := st.PaymentID()
	if !paymentID.IsNull() {
		t.Fatalf("payment_id state=%v, want null", paymentID.State())
	}
	ps, _ := st.PaymentStatus()
	if ps.Value().String() != "requires_payment_method" {
		t.Fatalf("payment_status=%q", ps.Value().String())
	}
}

func TestService_CreateSession_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantDetails map[string]any
	}{
		{
			name:       "not an object",
			body:       `[1,2]`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "MALFORMED_PAYLOAD",
		},
		{
			name:        "missing cart",
			body:        `{"customer":{"name":"x"}}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "VALIDATION_ERROR",
			wantDetails: map[string]any{"field": "product_cart", "reason": "missing required field"},
		},
		{
			name:       "unknown currency",
			body:       `{"product_cart":[],"billing_currency":"DOGE"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)
			_, err := svc.CreateSession(context.Background(), "p", []byte(tc.body))
			ae := (*Error)(nil)
			if !errors.As(err, &ae) || ae.Status != tc.wantStatus || ae.Code != tc.wantCode {
				t.Fatalf("err=%v (type=%T), want %d %s", err, err, tc.wantStatus, tc.wantCode)
			}
			if tc.wantDetails != nil {
				if diff := cmp.Diff(tc.wantDetails, ae.Details); diff != "" {
					t.Fatalf("details mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestService_UnknownCurrencyDetails(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	_, err := svc.CreateSession(context.Background(), "p", []byte(`{"product_cart":[],"billing_currency":"DOGE"}`))
	ae := (*Error)(nil)
	if !errors.As(err, &ae) {
		t.Fatalf("err=%v", err)
	}
	if !errors.Is(err, core.ErrInvalidData) {
		t.Fatalf("err=%v must wrap core.ErrInvalidData", err)
	}
	if ae.Details["field"] != "billing_currency" || ae.Details["value"] != `"DOGE"` {
		t.Fatalf("details=%v", ae.Details)
	}
	allowed, _ := ae.Details["allowed"].([]string)
	if len(allowed) == 0 {
		t.Fatalf("allowed members missing: %v", ae.Details)
	}
}

func TestService_GetSession_ScopedToPrincipal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t)
	resp, err := svc.CreateSession(ctx, "owner", []byte(validBody))
	if err != nil {
		t.Fatalf("CreateSession err=%v", err)
	}
	id, _ := resp.SessionID()

	_, err = svc.GetSession(ctx, "intruder", domain.SessionID(id.Value()))
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != http.StatusNotFound || ae.Code != "NOT_FOUND" {
		t.Fatalf("err=%v, want NOT_FOUND 404", err)
	}
}

func TestService_CompleteSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk := newTestService(t)
	resp, err := svc.CreateSession(ctx, "p", []byte(`{"product_cart":[{"product_id":"a","quantity":2}]}`))
	if err != nil {
		t.Fatalf("CreateSession err=%v", err)
	}
	idOpt, _ := resp.SessionID()
	id := domain.SessionID(idOpt.Value())
	clk.Advance(time.Minute)

	st, err := svc.CompleteSession(ctx, "p", id)
	if err != nil {
		t.Fatalf("CompleteSession err=%v", err)
	}
	ps, _ := st.PaymentStatus()
	pid, _ := st.PaymentID()
	if ps.Value().String() != "succeeded" || pid.Value() != "pay_fixed" {
		t.Fatalf("status=%q payment_id=%q", ps.Value().String(), pid.Value())
	}
	email, _ := st.CustomerEmail()
	if !email.IsNull() {
		t.Fatalf("customer_email state=%v, want null", email.State())
	}

	_, err = svc.CompleteSession(ctx, "p", id)
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Status != http.StatusConflict {
		t.Fatalf("second CompleteSession err=%v, want 409", err)
	}
	if _, err := svc.CompleteSession(ctx, "p", "cks_missing"); !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
		t.Fatalf("CompleteSession missing err=%v, want 404", err)
	}
}
