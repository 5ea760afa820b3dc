// capture.go — exception boundaries: panic→value adapters.
//
// The package distinguishes domain failures (Err values — expected, typed,
// returned) from defects (panics — unexpected). It never recovers defects
// except here, at the caller's explicit request: Capture runs a function
// inside a recover boundary and hands any defect, normalized to an error,
// to the caller's mapper, which decides which declared kind it becomes.
package xgxerrset

import (
	"errors"
	"fmt"
)

// Capture runs fn inside a panic boundary. On normal return the result
// passes through with a nil error. On panic, the recovered value is
// normalized — an error panics as itself, anything else is wrapped with
// its fmt.Sprint form as the message — and mapper's value is returned in
// its place. The result is the zero T in that case.
func Capture[T any](fn func() T, mapper func(error) *Err) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mapper(normalizePanic(r))
		}
	}()
	return fn(), nil
}

// CaptureErr is Capture for functions that also return an error: panics
// and returned non-nil errors are normalized identically, so both failure
// paths of fn surface as mapper's value.
func CaptureErr[T any](fn func() (T, error), mapper func(error) *Err) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = mapper(normalizePanic(r))
		}
	}()
	out, ferr := fn()
	if ferr != nil {
		return out, mapper(ferr)
	}
	return out, nil
}

func normalizePanic(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return errors.New(fmt.Sprint(r))
}
