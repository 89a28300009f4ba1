// Package optional models request fields whose presence matters: an absent
// field, an explicit null and a concrete value are three different updates.
package optional

import (
	"bytes"
	"encoding/json"
)

var nullLiteral = []byte("null")

// Value is a JSON field that records whether it was supplied at all.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Null returns a present value that was explicitly null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the input, null included.
func (v Value[T]) IsSet() bool {
	return v.set
}

// IsNull reports whether the field appeared as an explicit null.
func (v Value[T]) IsNull() bool {
	return v.set && v.null
}

// HasValue reports whether the field carries a concrete value.
func (v Value[T]) HasValue() bool {
	return v.set && !v.null
}

// Get returns the value and whether it is concrete.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.HasValue()
}

// Ptr returns nil for absent or null, otherwise a pointer to a copy.
func (v Value[T]) Ptr() *T {
	if !v.HasValue() {
		return nil
	}
	out := v.value
	return &out
}

// UnmarshalJSON is only invoked when the key is present in the document.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		var zero T
		v.value = zero
		v.null = true
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON writes null for absent and null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.HasValue() {
		return nullLiteral, nil
	}
	return json.Marshal(v.value)
}
