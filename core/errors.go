package core

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidData indicates a present value that does not conform to its declared type,
	// including open-enum values that match no known member.
	ErrInvalidData = errors.New("invalid data")

	// ErrMissingRequiredField indicates a required field that was never set.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMalformedPayload indicates wire text that is not a JSON object at all.
	ErrMalformedPayload = errors.New("malformed payload")
)

// InvalidDataError reports a present value that failed validation.
type InvalidDataError struct {
	// Type is the model (or enum) type name that owns the value.
	Type string
	// Field is the dotted wire path of the offending field; empty for a bare enum.
	Field string
	// Value is the raw wire value as found in the payload.
	Value string
	// Allowed lists the raw forms of the known members for enum values.
	Allowed []string
	// Reason is a short explanation when the failure is not an enum mismatch.
	Reason string
}

func (e *InvalidDataError) Error() string {
	var b strings.Builder
	b.WriteString("invalid data")
	if e.Type != "" || e.Field != "" {
		b.WriteString(" in ")
		b.WriteString(qualified(e.Type, e.Field))
	}
	if e.Value != "" {
		b.WriteString(": value ")
		b.WriteString(e.Value)
	}
	switch {
	case e.Reason != "":
		b.WriteString(": ")
		b.WriteString(e.Reason)
	case len(e.Allowed) > 0:
		b.WriteString(" is not one of [")
		b.WriteString(strings.Join(e.Allowed, ", "))
		b.WriteString("]")
	}
	return b.String()
}

func (e *InvalidDataError) Unwrap() error { return ErrInvalidData }

// MissingRequiredFieldError reports a required field in the Unset state.
type MissingRequiredFieldError struct {
	Type  string
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return "missing required field " + qualified(e.Type, e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error { return ErrMissingRequiredField }

func qualified(typ, field string) string {
	switch {
	case typ == "":
		return field
	case field == "":
		return typ
	}
	return typ + "." + field
}

// prefixPath returns err with key prepended to its field path. A non-empty typ
// replaces the owning type so the reported path is rooted at the outermost model.
func prefixPath(err error, typ, key string) error {
	switch e := err.(type) {
	case *InvalidDataError:
		out := *e
		if typ != "" {
			out.Type = typ
		}
		out.Field = joinPath(key, e.Field)
		return &out
	case *MissingRequiredFieldError:
		out := *e
		if typ != "" {
			out.Type = typ
		}
		out.Field = joinPath(key, e.Field)
		return &out
	}
	return err
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	}
	return parent + "." + child
}
