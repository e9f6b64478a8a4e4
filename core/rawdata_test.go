package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRawData_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	var d RawData
	if err := d.UnmarshalJSON([]byte(`{"zeta":1,"alpha":{"b":2,"a":1},"mid":[1, 2]}`)); err != nil {
		t.Fatalf("UnmarshalJSON err=%v", err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, d.Keys()); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}

	// Overwriting keeps the original position; new keys go last.
	_ = d.SetValue("zeta", "z")
	d.SetNull("omega")
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal err=%v", err)
	}
	want := `{"zeta":"z","alpha":{"b":2,"a":1},"mid":[1,2],"omega":null}`
	if string(got) != want {
		t.Fatalf("Marshal=%s, want %s", got, want)
	}
}

func TestRawData_DeleteAndContainsKey(t *testing.T) {
	t.Parallel()

	var d RawData
	if d.ContainsKey("a") {
		t.Fatalf("zero RawData contains a")
	}
	d.SetNull("a")
	if !d.ContainsKey("a") || !d.IsNull("a") {
		t.Fatalf("after SetNull: contains=%v null=%v", d.ContainsKey("a"), d.IsNull("a"))
	}
	d.Delete("a")
	d.Delete("missing")
	if d.ContainsKey("a") || d.Len() != 0 {
		t.Fatalf("after Delete: contains=%v len=%d", d.ContainsKey("a"), d.Len())
	}
}

func TestRawData_SetRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	var d RawData
	err := d.Set("a", json.RawMessage(`{"unterminated"`))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("Set err=%v, want ErrMalformedPayload", err)
	}
	if d.ContainsKey("a") {
		t.Fatalf("invalid Set must not store the key")
	}
	if err := d.Set("b", json.RawMessage(" [ 1 ,\n 2 ] ")); err != nil {
		t.Fatalf("Set err=%v", err)
	}
	raw, _ := d.Get("b")
	if string(raw) != "[1,2]" {
		t.Fatalf("stored %s, want compacted [1,2]", raw)
	}
}

func TestRawData_UnmarshalRejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`[1,2]`, `"text"`, `null`, `{"a":`, ``} {
		var d RawData
		if err := d.UnmarshalJSON([]byte(in)); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("UnmarshalJSON(%q) err=%v, want ErrMalformedPayload", in, err)
		}
	}
}

func TestRawData_Equal(t *testing.T) {
	t.Parallel()

	parse := func(s string) *RawData {
		t.Helper()
		var d RawData
		if err := d.UnmarshalJSON([]byte(s)); err != nil {
			t.Fatalf("UnmarshalJSON(%s) err=%v", s, err)
		}
		return &d
	}

	cases := []struct {
		a, b string
		want bool
	}{
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`{"n":1}`, `{"n":1.0}`, true},
		{`{"n":100}`, `{"n":1e2}`, true},
		{`{"o":{"x":1,"y":[1,{"z":null}]}}`, `{"o":{"y":[1,{"z":null}],"x":1}}`, true},
		{`{"l":[1,2]}`, `{"l":[2,1]}`, false},
		{`{"a":null}`, `{}`, false},
		{`{"a":"1"}`, `{"a":1}`, false},
		{`{"a":1}`, `{"b":1}`, false},
	}
	for _, tc := range cases {
		if got := parse(tc.a).Equal(parse(tc.b)); got != tc.want {
			t.Fatalf("Equal(%s, %s)=%v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRawData_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	var d RawData
	_ = d.SetValue("a", []int{1, 2})
	c := d.Clone()
	_ = c.SetValue("a", "changed")
	c.SetNull("b")

	raw, _ := d.Get("a")
	if string(raw) != "[1,2]" || d.ContainsKey("b") {
		t.Fatalf("original mutated: a=%s containsB=%v", raw, d.ContainsKey("b"))
	}

	// Bytes returned by Get are copies too.
	raw[0] = '{'
	again, _ := d.Get("a")
	if string(again) != "[1,2]" {
		t.Fatalf("Get leaked internal storage: %s", again)
	}
}
