// Package core is the serialization and validation substrate shared by every
// generated API model.
//
// Each model embeds an Object, whose RawData map is the only state a model has.
// Typed accessors are declared once per field as Field values and read from or
// write through to that map, so a field is in exactly one of three states:
//
//   - Unset: the wire key is absent;
//   - ExplicitNull: the wire key holds null (nullable fields only);
//   - Present: the wire key holds a value.
//
// RawData.ContainsKey(key) reports exactly whether a field is not Unset, at every
// point in time. Calling SetNull on a field that is not declared Nullable removes
// the key instead of writing null.
//
// Enum-shaped fields use Enum, which keeps whatever value the server sent and only
// checks it against the known members when Validate is called. Decoding never fails
// because of unknown enum values, unknown fields or missing required fields; only
// wire text that is not a JSON object is rejected.
//
// Models are not safe for concurrent mutation. A model is meant to be built and
// mutated by one goroutine and then treated as read-only; callers that share a
// model across goroutines while mutating it must synchronize access themselves.
package core
