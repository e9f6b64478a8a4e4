package core

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Symbol is implemented by the member type of an open enum. Member types are named
// primitive types (usually strings) with one typed constant per known member.
//
//	type Theme string
//
//	const (
//		ThemeLight Theme = "light"
//		ThemeDark  Theme = "dark"
//	)
//
//	func (Theme) KnownValues() []Theme { return []Theme{ThemeLight, ThemeDark} }
type Symbol[E any] interface {
	comparable
	KnownValues() []E
}

// Enum is an open enum: it holds any wire value for an enum-shaped field and
// round-trips it verbatim, whether or not it matches a known member of E.
//
// Enum values are comparable. Two enums are equal iff their raw wire values are
// equal; an unknown value never equals a known member with a different raw form.
// Membership is only checked by IsKnown, Value and Validate.
type Enum[E Symbol[E]] struct {
	raw string
}

// NewEnum wraps a known member.
func NewEnum[E Symbol[E]](v E) Enum[E] {
	// Marshaling a primitive member type cannot fail.
	b, _ := json.Marshal(v)
	return Enum[E]{raw: string(b)}
}

// EnumFromRaw wraps an arbitrary wire value. It never fails: a raw value that is not
// valid JSON is kept as a JSON string holding its text.
func EnumFromRaw[E Symbol[E]](raw json.RawMessage) Enum[E] {
	c, err := compact(raw)
	if err != nil {
		b, _ := json.Marshal(string(raw))
		return Enum[E]{raw: string(b)}
	}
	return Enum[E]{raw: string(c)}
}

// EnumFromString wraps a string wire value.
func EnumFromString[E Symbol[E]](s string) Enum[E] {
	b, _ := json.Marshal(s)
	return Enum[E]{raw: string(b)}
}

// Raw returns the stored wire value.
func (e Enum[E]) Raw() json.RawMessage {
	if e.raw == "" {
		return nil
	}
	return json.RawMessage(e.raw)
}

// Value returns the member matching the raw value and whether it is known.
func (e Enum[E]) Value() (E, bool) {
	var v E
	if e.raw == "" {
		return v, false
	}
	if err := json.Unmarshal([]byte(e.raw), &v); err != nil {
		var zero E
		return zero, false
	}
	if !slices.Contains(v.KnownValues(), v) {
		return v, false
	}
	return v, true
}

func (e Enum[E]) IsKnown() bool {
	_, ok := e.Value()
	return ok
}

// Validate fails with an *InvalidDataError when the raw value matches no known member.
func (e Enum[E]) Validate() error {
	if e.IsKnown() {
		return nil
	}
	var zero E
	known := zero.KnownValues()
	allowed := make([]string, 0, len(known))
	for _, k := range known {
		b, _ := json.Marshal(k)
		allowed = append(allowed, string(b))
	}
	err := &InvalidDataError{
		Type:    reflect.TypeOf(zero).Name(),
		Value:   e.raw,
		Allowed: allowed,
	}
	if e.raw == "" {
		err.Reason = "empty enum value"
	}
	return err
}

func (e Enum[E]) Equal(o Enum[E]) bool { return e.raw == o.raw }

// String returns the wire string for string-valued enums and the raw JSON otherwise.
func (e Enum[E]) String() string {
	var s string
	if err := json.Unmarshal([]byte(e.raw), &s); err == nil {
		return s
	}
	return e.raw
}

func (e Enum[E]) MarshalJSON() ([]byte, error) {
	if e.raw == "" {
		return []byte("null"), nil
	}
	return []byte(e.raw), nil
}

func (e *Enum[E]) UnmarshalJSON(data []byte) error {
	c, err := compact(data)
	if err != nil {
		return err
	}
	e.raw = string(c)
	return nil
}
