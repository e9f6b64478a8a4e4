package core

import (
	"encoding/json"
	"fmt"
)

// Object is the storage shared by every generated model: a RawData map that
// typed accessors read from and write through to. Embed it by value.
type Object struct {
	raw RawData
}

// Raw exposes the wire map backing the model.
func (o *Object) Raw() *RawData { return &o.raw }

func (o Object) MarshalJSON() ([]byte, error) { return o.raw.MarshalJSON() }

func (o *Object) UnmarshalJSON(data []byte) error { return o.raw.UnmarshalJSON(data) }

// Model is implemented by pointers to generated model types.
type Model interface {
	Raw() *RawData
	Validator
}

// ModelPtr constrains PT to be a pointer to the model type T.
type ModelPtr[T any] interface {
	*T
	Model
}

// Serialize encodes m as a JSON object. Unknown fields and unknown enum values
// present in m's RawData are emitted verbatim.
func Serialize(m Model) ([]byte, error) {
	return m.Raw().MarshalJSON()
}

// Deserialize decodes data into a new model. It fails only when data is not a JSON
// object; unknown fields, unknown enum values and missing required fields are kept
// as they are and surface through Validate.
func Deserialize[T any, PT ModelPtr[T]](data []byte) (PT, error) {
	var m T
	p := PT(&m)
	if err := p.Raw().UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return p, nil
}

// FromRaw builds a model around a deep copy of raw.
func FromRaw[T any, PT ModelPtr[T]](raw *RawData) PT {
	var m T
	p := PT(&m)
	*p.Raw() = raw.Clone()
	return p
}

// Clone deep-copies m. Mutating the copy never affects m.
func Clone[T any, PT ModelPtr[T]](m PT) PT {
	if m == nil {
		return nil
	}
	return FromRaw[T, PT](m.Raw())
}

// Equal compares two models by their wire representation.
func Equal(a, b Model) bool {
	return a.Raw().Equal(b.Raw())
}

// Schema is a model's declarative field table.
type Schema struct {
	typ    string
	fields []FieldSpec
	keys   map[string]struct{}
}

// Specer is implemented by Field values.
type Specer interface {
	Spec() FieldSpec
}

// NewSchema declares the field table of the model type typ. Fields are validated in
// the order given.
func NewSchema(typ string, fields ...Specer) *Schema {
	s := &Schema{typ: typ, keys: make(map[string]struct{}, len(fields))}
	for _, f := range fields {
		spec := f.Spec()
		if spec.Owner != typ {
			panic(fmt.Sprintf("core: field %s.%s declared in schema %s", spec.Owner, spec.Key, typ))
		}
		if _, dup := s.keys[spec.Key]; dup {
			panic(fmt.Sprintf("core: duplicate field %s.%s", typ, spec.Key))
		}
		s.keys[spec.Key] = struct{}{}
		s.fields = append(s.fields, spec)
	}
	return s
}

func (s *Schema) Type() string { return s.typ }

func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate checks o against the field table in declaration order and returns the
// first violation:
//   - a required field that is Unset is a *MissingRequiredFieldError;
//   - an explicit null in a non-nullable field is an *InvalidDataError;
//   - a present value that does not decode, or a nested model, enum or list/map of
//     them that fails its own validation, is reported with its full wire path.
func (s *Schema) Validate(o *Object) error {
	for _, f := range s.fields {
		raw, ok := o.raw.vals[f.Key]
		if !ok {
			if f.Required {
				return &MissingRequiredFieldError{Type: s.typ, Field: f.Key}
			}
			continue
		}
		if isNull(raw) {
			if !f.Nullable {
				return &InvalidDataError{Type: s.typ, Field: f.Key, Value: "null", Reason: "field is not nullable"}
			}
			continue
		}
		if err := f.check(raw); err != nil {
			return prefixPath(err, s.typ, f.Key)
		}
	}
	return nil
}

// AdditionalProperties returns the wire entries of o that the schema does not declare.
func (s *Schema) AdditionalProperties(o *Object) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	for _, k := range o.raw.keys {
		if _, known := s.keys[k]; !known {
			out[k] = cloneRaw(o.raw.vals[k])
		}
	}
	return out
}
