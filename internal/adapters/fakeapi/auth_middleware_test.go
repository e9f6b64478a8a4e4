package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paylane/paylane-go/internal/domain"
)

func probeHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			t.Errorf("principal missing from context")
		}
		_, _ = w.Write([]byte(p))
	})
}

func TestAuthMiddleware_Rejections_401(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		authz string
	}{
		{name: "missing header", authz: ""},
		{name: "wrong scheme", authz: "Basic abc"},
		{name: "empty token", authz: "Bearer   "},
		{name: "unknown key", authz: "Bearer sk_unknown"},
	}
	h := NewAuthMiddleware("sk_test_1", "sk_test_2")(probeHandler(t))
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/checkouts/x", nil)
			if tc.authz != "" {
				req.Header.Set("Authorization", tc.authz)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("status=%d want=401 body=%s", rr.Code, rr.Body.String())
			}
			var env struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil || env.Error.Code != "UNAUTHORIZED" {
				t.Fatalf("body=%s err=%v", rr.Body.String(), err)
			}
		})
	}
}

func TestAuthMiddleware_ValidKey_SetsPrincipal(t *testing.T) {
	t.Parallel()

	h := NewAuthMiddleware("sk_test_1", "sk_test_2")(probeHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/checkouts/x", nil)
	req.Header.Set("Authorization", "Bearer sk_test_2")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if got, want := rr.Body.String(), string(domain.PrincipalFromAPIKey("sk_test_2")); got != want {
		t.Fatalf("principal=%q want=%q", got, want)
	}
}

func TestAuthMiddleware_NoKeysConfigured_AcceptsAnyKey(t *testing.T) {
	t.Parallel()

	h := NewAuthMiddleware()(probeHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/checkouts/x", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}
