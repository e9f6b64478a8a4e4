package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/oapi-codegen/nullable"
)

// FieldFlag declares the schema policy of a field.
type FieldFlag uint8

const (
	// Required fields must not be Unset at validation time. Null satisfies Required.
	Required FieldFlag = 1 << iota
	// Nullable fields keep an explicit null on the wire. Without it, SetNull omits the field.
	Nullable
)

// FieldSpec is one row of a model's field table.
type FieldSpec struct {
	Owner    string
	Key      string
	Required bool
	Nullable bool

	check func(raw json.RawMessage) error
}

// Validator is implemented by models and enums.
type Validator interface {
	Validate() error
}

// Field binds a typed tri-state view to one wire key of an Object.
// Field values are immutable descriptors declared once per generated model.
type Field[T any] struct {
	spec FieldSpec
}

// NewField declares the field key of the model type owner.
func NewField[T any](owner, key string, flags ...FieldFlag) Field[T] {
	f := Field[T]{spec: FieldSpec{Owner: owner, Key: key}}
	for _, fl := range flags {
		f.spec.Required = f.spec.Required || fl&Required != 0
		f.spec.Nullable = f.spec.Nullable || fl&Nullable != 0
	}
	f.spec.check = checkValue[T]
	return f
}

func (f Field[T]) Spec() FieldSpec { return f.spec }
func (f Field[T]) Key() string     { return f.spec.Key }

// State reports the field's presence without decoding it.
func (f Field[T]) State(o *Object) State {
	switch {
	case !o.raw.ContainsKey(f.spec.Key):
		return Unset
	case o.raw.IsNull(f.spec.Key):
		return ExplicitNull
	}
	return Present
}

// Get decodes the current value. A present value that does not decode as T is
// reported as an *InvalidDataError; the raw node is left untouched.
func (f Field[T]) Get(o *Object) (Optional[T], error) {
	raw, ok := o.raw.vals[f.spec.Key]
	if !ok {
		return Unspecified[T](), nil
	}
	var n nullable.Nullable[T]
	if err := json.Unmarshal(raw, &n); err != nil {
		return Unspecified[T](), &InvalidDataError{
			Type:   f.spec.Owner,
			Field:  f.spec.Key,
			Value:  string(raw),
			Reason: err.Error(),
		}
	}
	return FromNullable(n), nil
}

// Set stores v. A v that encodes as null (a nil slice or map, the zero Enum) is
// stored the way SetNull stores it. Set panics if v has no JSON representation
// (NaN, ±Inf, or a time outside years 0-9999), which only a programming error
// can produce.
func (f Field[T]) Set(o *Object, v T) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("core: cannot encode %s.%s: %v", f.spec.Owner, f.spec.Key, err))
	}
	if isNull(b) {
		f.SetNull(o)
		return
	}
	o.raw.put(f.spec.Key, b)
}

// SetNull stores an explicit null for nullable fields and omits non-nullable ones.
func (f Field[T]) SetNull(o *Object) {
	if f.spec.Nullable {
		o.raw.SetNull(f.spec.Key)
		return
	}
	o.raw.Delete(f.spec.Key)
}

func (f Field[T]) Unset(o *Object) { o.raw.Delete(f.spec.Key) }

// Assign applies v according to its state.
func (f Field[T]) Assign(o *Object, v Optional[T]) {
	switch v.State() {
	case Present:
		f.Set(o, v.Value())
	case ExplicitNull:
		f.SetNull(o)
	default:
		f.Unset(o)
	}
}

// checkValue decodes a non-null raw node as T and validates it recursively.
func checkValue[T any](raw json.RawMessage) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return &InvalidDataError{Value: string(raw), Reason: err.Error()}
	}
	return validateValue(reflect.ValueOf(&v).Elem())
}

// validateValue calls Validate on v when it is a Validator, and otherwise walks into
// lists, maps and pointers looking for nested validators.
func validateValue(v reflect.Value) error {
	if v.CanAddr() {
		if val, ok := v.Addr().Interface().(Validator); ok {
			return val.Validate()
		}
	}
	if v.CanInterface() {
		if val, ok := v.Interface().(Validator); ok {
			return val.Validate()
		}
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := validateValue(v.Index(i)); err != nil {
				return prefixPath(err, "", fmt.Sprintf("[%d]", i))
			}
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			elem := reflect.New(v.Type().Elem()).Elem()
			elem.Set(v.MapIndex(k))
			if err := validateValue(elem); err != nil {
				return prefixPath(err, "", fmt.Sprintf("[%v]", k.Interface()))
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			return validateValue(v.Elem())
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool { return bytes.Equal(raw, jsonNull) }
