package core

import "github.com/oapi-codegen/nullable"

// State is the presence state of one model field.
type State uint8

const (
	// Unset means the field was never assigned (absent from the wire payload).
	Unset State = iota
	// ExplicitNull means the field was assigned null.
	ExplicitNull
	// Present means the field holds a concrete value.
	Present
)

func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case ExplicitNull:
		return "null"
	case Present:
		return "present"
	}
	return "unknown"
}

// Optional is a tri-state field value used to distinguish:
// - unspecified (omitted)
// - specified as null
// - specified with a value
type Optional[T any] struct {
	state State
	value T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{state: ExplicitNull} }
func Some[T any](v T) Optional[T]     { return Optional[T]{state: Present, value: v} }

func (o Optional[T]) State() State      { return o.state }
func (o Optional[T]) IsSpecified() bool { return o.state != Unset }
func (o Optional[T]) IsNull() bool      { return o.state == ExplicitNull }
func (o Optional[T]) IsPresent() bool   { return o.state == Present }

// Value returns the held value, or the zero value of T when the state is not Present.
func (o Optional[T]) Value() T { return o.value }

// Get returns the held value and whether it is Present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.state == Present }

// ValueOr returns the held value when Present and def otherwise.
func (o Optional[T]) ValueOr(def T) T {
	if o.state == Present {
		return o.value
	}
	return def
}

// Nullable converts o into the oapi-codegen representation, which encodes the
// same three states.
func (o Optional[T]) Nullable() nullable.Nullable[T] {
	switch o.state {
	case ExplicitNull:
		return nullable.NewNullNullable[T]()
	case Present:
		return nullable.NewNullableWithValue(o.value)
	}
	return nil
}

// FromNullable converts an oapi-codegen nullable into an Optional.
func FromNullable[T any](n nullable.Nullable[T]) Optional[T] {
	if !n.IsSpecified() {
		return Unspecified[T]()
	}
	if n.IsNull() {
		return Null[T]()
	}
	return Some(n.MustGet())
}
