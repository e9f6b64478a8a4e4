package domain

import (
	"strings"
	"testing"
)

func TestCustomerContact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fn   func(string) *string
		in   string
		want string // "" means nil
	}{
		{"name collapses whitespace", CustomerName, "  Ada \t  Lovelace\n", "Ada Lovelace"},
		{"blank name", CustomerName, " \t ", ""},
		{"email domain lower-cased", CustomerEmail, " Ada.L@Example.COM ", "Ada.L@example.com"},
		{"email without at sign", CustomerEmail, "nobody", "nobody"},
		{"blank email", CustomerEmail, "   ", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.fn(tc.in)
			switch {
			case tc.want == "" && got != nil:
				t.Fatalf("got %q, want nil", *got)
			case tc.want != "" && (got == nil || *got != tc.want):
				t.Fatalf("got %v, want %q", got, tc.want)
			}
		})
	}
}

func TestNewSessionID(t *testing.T) {
	t.Parallel()

	a, b := NewSessionID(), NewSessionID()
	if !strings.HasPrefix(string(a), "cks_") || a == b {
		t.Fatalf("ids a=%q b=%q", a, b)
	}
}

func TestPrincipalFromAPIKey(t *testing.T) {
	t.Parallel()

	p := PrincipalFromAPIKey("sk_test_1")
	if len(p) != 64 || strings.Contains(string(p), "sk_test_1") {
		t.Fatalf("principal=%q", p)
	}
	if p != PrincipalFromAPIKey("sk_test_1") || p == PrincipalFromAPIKey("sk_test_2") {
		t.Fatalf("principal must be a stable digest of the key")
	}
}
