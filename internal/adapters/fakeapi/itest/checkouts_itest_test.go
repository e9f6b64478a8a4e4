package itest

import (
	"net/http"
	"testing"
	"time"

	"github.com/paylane/paylane-go/checkoutsessions"
	"github.com/paylane/paylane-go/core"
)

const (
	alice = "sk_itest_alice"
	bob   = "sk_itest_bob"
)

const createBody = `{"product_cart":[{"product_id":"pdt_1","quantity":2,"amount":null}],` +
	`"customer":{"email":"alice@Example.com","name":"Alice  Liddell"},` +
	`"billing_address":{"country":"AF"},"x_future":{"nested":true}}`

func TestCheckoutSessionLifecycle(t *testing.T) {
	for _, b := range backendsFromEnv(t) {
		t.Run(string(b), func(t *testing.T) {
			srv := newTestServer(t, b)

			for _, key := range []string{"", "sk_live_mallory"} {
				status, body, _ := srv.call(t, http.MethodPost, "/checkouts", key, "", createBody)
				expectError(t, status, body, http.StatusUnauthorized, "UNAUTHORIZED")
			}

			idemKey := newIdemKey()
			status, body, _ := srv.call(t, http.MethodPost, "/checkouts", alice, idemKey, createBody)
			if status != http.StatusCreated {
				t.Fatalf("create status=%d body=%s", status, body)
			}
			created := decodeModel[checkoutsessions.CheckoutSessionResponse](t, body)
			sid, _ := created.SessionID()
			url, _ := created.CheckoutURL()
			id := sid.Value()
			if id == "" || url.Value() == "" {
				t.Fatalf("create response=%s", body)
			}

			// Retrying with the key replays; another body under it is a reuse.
			status, replay, hdr := srv.call(t, http.MethodPost, "/checkouts", alice, idemKey, createBody)
			if status != http.StatusCreated || hdr.Get("Idempotent-Replayed") != "true" {
				t.Fatalf("replay status=%d replayed=%q", status, hdr.Get("Idempotent-Replayed"))
			}
			if rid, _ := decodeModel[checkoutsessions.CheckoutSessionResponse](t, replay).SessionID(); rid.Value() != id {
				t.Fatalf("replayed session_id=%q want=%q", rid.Value(), id)
			}
			status, body, _ = srv.call(t, http.MethodPost, "/checkouts", alice, idemKey, `{"product_cart":[]}`)
			expectError(t, status, body, http.StatusConflict, "IDEMPOTENCY_KEY_REUSE")

			// The same key is independent for another principal.
			status, body, _ = srv.call(t, http.MethodPost, "/checkouts", bob, idemKey, `{"product_cart":[]}`)
			if status != http.StatusCreated {
				t.Fatalf("bob create status=%d body=%s", status, body)
			}

			status, body, _ = srv.call(t, http.MethodGet, "/checkouts/"+id, bob, "", "")
			expectError(t, status, body, http.StatusNotFound, "NOT_FOUND")

			status, body, _ = srv.call(t, http.MethodGet, "/checkouts/"+id, alice, "", "")
			if status != http.StatusOK {
				t.Fatalf("get status=%d body=%s", status, body)
			}
			st := decodeModel[checkoutsessions.CheckoutSessionStatus](t, body)
			name, _ := st.CustomerName()
			email, _ := st.CustomerEmail()
			createdAt, _ := st.CreatedAt()
			ps, _ := st.PaymentStatus()
			if name.Value() != "Alice Liddell" || email.Value() != "alice@example.com" {
				t.Fatalf("customer fields: %s", body)
			}
			if !createdAt.Value().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("created_at=%v", createdAt.Value())
			}
			if ps.Value() != core.NewEnum(checkoutsessions.IntentStatusRequiresPaymentMethod) {
				t.Fatalf("payment_status=%s", ps.Value())
			}

			srv.clock.Advance(5 * time.Minute)
			path := "/_fake/checkouts/" + id + "/complete"
			status, body, _ = srv.call(t, http.MethodPost, path, alice, "", "")
			if status != http.StatusOK {
				t.Fatalf("complete status=%d body=%s", status, body)
			}
			done := decodeModel[checkoutsessions.CheckoutSessionStatus](t, body)
			ps, _ = done.PaymentStatus()
			pid, _ := done.PaymentID()
			if ps.Value() != core.NewEnum(checkoutsessions.IntentStatusSucceeded) || !pid.IsPresent() {
				t.Fatalf("completed status: %s", body)
			}
			status, body, _ = srv.call(t, http.MethodPost, path, alice, "", "")
			expectError(t, status, body, http.StatusConflict, "SESSION_ALREADY_COMPLETED")

			status, body, _ = srv.call(t, http.MethodPost, "/checkouts", alice, "", `{"product_cart":[],"billing_address":{"country":"ZZ"}}`)
			eb := expectError(t, status, body, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
			details, _ := eb.Details()
			if details.Value()["field"] != "billing_address.country" {
				t.Fatalf("details=%v", details.Value())
			}
		})
	}
}
