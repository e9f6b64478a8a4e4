package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestYAMLToJSON_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	in := `
product_cart:
  - product_id: pdt_1
    quantity: 2
    amount: ~
billing_address:
  zipcode: "02134"
  country: AF
confirm: false
ratio: 0.5
created: 2024-01-01T00:00:00Z
`
	got, err := YAMLToJSON([]byte(in))
	if err != nil {
		t.Fatalf("YAMLToJSON err=%v", err)
	}
	want := `{"product_cart":[{"product_id":"pdt_1","quantity":2,"amount":null}],` +
		`"billing_address":{"zipcode":"02134","country":"AF"},"confirm":false,"ratio":0.5,` +
		`"created":"2024-01-01T00:00:00Z"}`
	if string(got) != want {
		t.Fatalf("YAMLToJSON:\n got %s\nwant %s", got, want)
	}
}

func TestYAMLToJSON_Aliases(t *testing.T) {
	t.Parallel()

	in := `
base: &item {product_id: a, quantity: 1}
cart: [*item, *item]
`
	got, err := YAMLToJSON([]byte(in))
	if err != nil {
		t.Fatalf("YAMLToJSON err=%v", err)
	}
	want := `{"base":{"product_id":"a","quantity":1},"cart":[{"product_id":"a","quantity":1},{"product_id":"a","quantity":1}]}`
	if string(got) != want {
		t.Fatalf("got %s", got)
	}
}

func TestYAMLToJSON_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"merge key":      "a: &x {k: 1}\nb:\n  <<: *x\n",
		"complex key":    "? [a, b]\n: 1\n",
		"not a number":   "x: .nan\n",
		"infinite float": "x: .inf\n",
	}
	for name, in := range cases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := YAMLToJSON([]byte(in)); !errors.Is(err, ErrUnsupported) {
				t.Fatalf("err=%v, want ErrUnsupported", err)
			}
		})
	}
	if _, err := YAMLToJSON(nil); err == nil {
		t.Fatalf("empty document must fail")
	}
}

func TestHuJSONToJSON(t *testing.T) {
	t.Parallel()

	in := `{
		// cart
		"product_cart": [{"product_id": "p", "quantity": 1,},],
		/* trailing */ "confirm": true,
	}`
	got, err := HuJSONToJSON([]byte(in))
	if err != nil {
		t.Fatalf("HuJSONToJSON err=%v", err)
	}
	want := `{"product_cart":[{"product_id":"p","quantity":1}],"confirm":true}`
	if string(compact(t, got)) != want {
		t.Fatalf("got %s", got)
	}
	if _, err := HuJSONToJSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("truncated input must fail")
	}
}

func TestLoad_ByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "req.yml")
	jsonc := filepath.Join(dir, "req.jsonc")
	if err := os.WriteFile(yml, []byte("b: 1\na: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonc, []byte(`{"b": 1, "a": 2, // x
}`), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{yml, jsonc} {
		got, err := Load(p)
		if err != nil {
			t.Fatalf("Load(%s) err=%v", p, err)
		}
		if string(compact(t, got)) != `{"b":1,"a":2}` {
			t.Fatalf("Load(%s)=%s", p, got)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v", err)
	}
}
