// typed.go — optional type-safe access to extracted data.
//
// TypedField is an ergonomic layer over (*Err).Data for callers that read
// the same placeholder keys in many places. It does not replace the plain
// map view — it complements it.
//
// Reads scan the ordered internal fields directly (last-write-wins for
// duplicate placeholder keys) instead of building a map, so the common
// path allocates nothing.
package xgxerrset

import (
	"errors"
	"fmt"
)

// TypedField reads one data key as a concrete type. T must match the
// stored dynamic type exactly; no conversions are applied.
type TypedField[T any] struct {
	key string
}

// Typed constructs a TypedField[T] for a placeholder key.
func Typed[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying placeholder key.
func (f TypedField[T]) Key() string { return f.key }

// Get retrieves the typed value from err's first branded value (the value
// itself or, via errors.As, the nearest one in the cause chain). Returns
// (zero, false) if err carries no branded value, the key is absent, or the
// stored dynamic type differs from T.
func (f TypedField[T]) Get(err error) (T, bool) {
	var zero T
	var e *Err
	if !errors.As(err, &e) {
		return zero, false
	}
	for i := len(e.data) - 1; i >= 0; i-- {
		if e.data[i].Key != f.key {
			continue
		}
		tv, ok := e.data[i].Val.(T)
		if !ok {
			return zero, false
		}
		return tv, true
	}
	return zero, false
}

// MustGet is Get, panicking with a descriptive message when the field is
// missing or mistyped. Intended for tests and contexts where absence is a
// programming error.
func (f TypedField[T]) MustGet(err error) T {
	v, ok := f.Get(err)
	if !ok {
		var zero T
		panic(fmt.Sprintf("xgxerrset: TypedField[%T](%q): missing or mistyped", zero, f.key))
	}
	return v
}
