package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

var jsonNull = json.RawMessage("null")

// RawData maps wire field names to compact JSON nodes, preserving insertion order.
//
// It is the single source of truth for what a model serializes to. A key is present
// iff the corresponding field is ExplicitNull or Present. The zero value is an empty,
// ready-to-use map.
type RawData struct {
	keys []string
	vals map[string]json.RawMessage
}

func (d *RawData) Len() int { return len(d.keys) }

// Keys returns the wire keys in insertion order.
func (d *RawData) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *RawData) ContainsKey(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Get returns a copy of the raw node stored under key.
func (d *RawData) Get(key string) (json.RawMessage, bool) {
	v, ok := d.vals[key]
	if !ok {
		return nil, false
	}
	return cloneRaw(v), true
}

// IsNull reports whether key is present and holds JSON null.
func (d *RawData) IsNull(key string) bool {
	v, ok := d.vals[key]
	return ok && bytes.Equal(v, jsonNull)
}

// Set stores raw under key. raw must be a single valid JSON value.
// An existing key keeps its position.
func (d *RawData) Set(key string, raw json.RawMessage) error {
	c, err := compact(raw)
	if err != nil {
		return fmt.Errorf("%w: value for %q: %v", ErrMalformedPayload, key, err)
	}
	d.put(key, c)
	return nil
}

// SetValue stores the JSON encoding of v under key.
func (d *RawData) SetValue(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	d.put(key, b)
	return nil
}

// SetNull stores an explicit JSON null under key.
func (d *RawData) SetNull(key string) { d.put(key, cloneRaw(jsonNull)) }

func (d *RawData) Delete(key string) {
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

func (d *RawData) put(key string, raw json.RawMessage) {
	if d.vals == nil {
		d.vals = make(map[string]json.RawMessage)
	}
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = raw
}

// Clone returns a deep copy that shares no memory with d.
func (d *RawData) Clone() RawData {
	out := RawData{keys: make([]string, len(d.keys))}
	copy(out.keys, d.keys)
	if d.vals != nil {
		out.vals = make(map[string]json.RawMessage, len(d.vals))
		for k, v := range d.vals {
			out.vals[k] = cloneRaw(v)
		}
	}
	return out
}

// Equal reports structural equality: the same key set, and for every key values that
// are equal as JSON (objects key-for-key regardless of order, arrays element-wise,
// numbers by numeric value). Insertion order is not significant.
func (d *RawData) Equal(o *RawData) bool {
	if d.Len() != o.Len() {
		return false
	}
	for k, v := range d.vals {
		ov, ok := o.vals[k]
		if !ok || !jsonEqual(v, ov) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (d RawData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(d.vals[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of d with the members of a JSON object,
// keeping their order. Any object is accepted; unknown keys are preserved.
func (d *RawData) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", ErrMalformedPayload)
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformedPayload, res.Type)
	}
	var (
		next RawData
		err  error
	)
	res.ForEach(func(key, value gjson.Result) bool {
		var c json.RawMessage
		if c, err = compact(json.RawMessage(value.Raw)); err != nil {
			return false
		}
		next.put(key.String(), c)
		return true
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	*d = next
	return nil
}

func compact(raw json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

// numbersEqual compares JSON numbers by value, so 1, 1.0 and 1e0 are equal.
var numbersEqual = cmp.Comparer(func(a, b json.Number) bool {
	ra, okA := new(big.Rat).SetString(string(a))
	rb, okB := new(big.Rat).SetString(string(b))
	if !okA || !okB {
		return a == b
	}
	return ra.Cmp(rb) == 0
})

func jsonEqual(a, b json.RawMessage) bool {
	if bytes.Equal(a, b) {
		return true
	}
	va, errA := decodeGeneric(a)
	vb, errB := decodeGeneric(b)
	if errA != nil || errB != nil {
		return false
	}
	return cmp.Equal(va, vb, numbersEqual)
}

func decodeGeneric(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
