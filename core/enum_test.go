package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnum_KnownMember(t *testing.T) {
	t.Parallel()

	e := NewEnum(colorRed)
	if string(e.Raw()) != `"red"` || e.String() != "red" {
		t.Fatalf("Raw()=%s String()=%q", e.Raw(), e.String())
	}
	v, ok := e.Value()
	if !ok || v != colorRed {
		t.Fatalf("Value()=(%q,%v)", v, ok)
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
	if e != EnumFromString[testColor]("red") {
		t.Fatalf("known member and equal raw string must be ==")
	}
}

func TestEnum_UnknownValueRoundTrips(t *testing.T) {
	t.Parallel()

	e := EnumFromString[testColor]("totally-unrecognized-string")
	if e.IsKnown() {
		t.Fatalf("IsKnown()=true for unknown value")
	}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal err=%v", err)
	}
	var back Enum[testColor]
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal err=%v", err)
	}
	if back != e || back.String() != "totally-unrecognized-string" {
		t.Fatalf("round trip=%q, want %q", back.String(), e.String())
	}

	err = back.Validate()
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("Validate() err=%v, want ErrInvalidData", err)
	}
	var ide *InvalidDataError
	if !errors.As(err, &ide) {
		t.Fatalf("Validate() err type=%T", err)
	}
	if ide.Type != "testColor" || ide.Value != `"totally-unrecognized-string"` {
		t.Fatalf("error=%+v", ide)
	}
	if diff := cmp.Diff([]string{`"red"`, `"blue"`}, ide.Allowed); diff != "" {
		t.Fatalf("Allowed mismatch (-want +got):\n%s", diff)
	}
}

func TestEnum_EqualityIsByRawValue(t *testing.T) {
	t.Parallel()

	a := EnumFromString[testColor]("green")
	b := EnumFromRaw[testColor](json.RawMessage(` "green" `))
	if !a.Equal(b) || a != b {
		t.Fatalf("same unknown raw value must compare equal")
	}
	if a.Equal(NewEnum(colorRed)) || a.Equal(NewEnum(colorBlue)) {
		t.Fatalf("unknown value must not equal a known member")
	}

	set := map[Enum[testColor]]int{a: 1}
	if set[b] != 1 {
		t.Fatalf("enum values must hash by raw value")
	}
}

func TestEnum_NonStringWireValues(t *testing.T) {
	t.Parallel()

	if err := NewEnum(levelHigh).Validate(); err != nil {
		t.Fatalf("Validate() known int member err=%v", err)
	}
	unknown := EnumFromRaw[testLevel](json.RawMessage(`7`))
	if unknown.IsKnown() || unknown.String() != "7" {
		t.Fatalf("unknown int: known=%v string=%q", unknown.IsKnown(), unknown.String())
	}
	wrongType := EnumFromRaw[testLevel](json.RawMessage(`"high"`))
	if err := wrongType.Validate(); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("Validate() err=%v, want ErrInvalidData", err)
	}
	if string(wrongType.Raw()) != `"high"` {
		t.Fatalf("raw value must be kept verbatim, got %s", wrongType.Raw())
	}
}

func TestEnum_ZeroValue(t *testing.T) {
	t.Parallel()

	var e Enum[testColor]
	if e.Raw() != nil {
		t.Fatalf("zero Raw()=%s", e.Raw())
	}
	b, _ := json.Marshal(e)
	if string(b) != "null" {
		t.Fatalf("zero marshals to %s", b)
	}
	if err := e.Validate(); !errors.Is(err, ErrInvalidData) {
		t.Fatalf("zero Validate() err=%v", err)
	}
}

func TestEnum_InvalidRawKeptAsString(t *testing.T) {
	t.Parallel()

	e := EnumFromRaw[testColor](json.RawMessage(`not json`))
	if e.String() != "not json" {
		t.Fatalf("String()=%q", e.String())
	}
	if !json.Valid(e.Raw()) {
		t.Fatalf("Raw() must stay valid JSON, got %s", e.Raw())
	}
}
