// handle.go — handler dispatch: Recover and Inspect.
//
// Recover reduces a matched error to a plain value; Inspect is side-effect
// only. Both dispatch on the exact kind string and invoke at most one
// handler per call. Recover with a matched kind and no handler panics by
// design: the caller must either handle every kind or supply Else. That is
// the package's second and last deliberate panic after duplicate-kind
// declaration — programmer errors in using the engine, not domain failures.
package xgxerrset

import "fmt"

// Handlers maps kind names to recovery functions, with an optional Else
// catch-all consulted when no per-kind entry matches.
type Handlers[T any] struct {
	On   map[string]func(*Err) T
	Else func(*Err) T
}

// Recover resolves err against g. When err is nil or not recognized by g,
// the pair (v, err) passes through unchanged. When it matches, the handler
// for its exact kind (or Else) produces the result and the error is
// consumed, so success and recovery types unify at the call site.
func Recover[T any](g Guard, v T, err error, h Handlers[T]) (T, error) {
	if err == nil || g == nil || !g.Is(err) {
		return v, err
	}
	e, ok := err.(*Err)
	if !ok {
		return v, err
	}
	fn := h.On[e.kind]
	if fn == nil {
		fn = h.Else
	}
	if fn == nil {
		panic(fmt.Sprintf("xgxerrset: Recover: no handler and no Else for kind %q", e.kind))
	}
	return fn(e), nil
}

// Inspect invokes the handler for err's exact kind, if one was supplied.
// It never invokes more than one handler, never panics on an unmatched
// kind, and returns nothing — it must not be used for control flow.
func Inspect(g Guard, err error, on map[string]func(*Err)) {
	if err == nil || g == nil || !g.Is(err) {
		return
	}
	e, ok := err.(*Err)
	if !ok {
		return
	}
	if fn := on[e.kind]; fn != nil {
		fn(e)
	}
}
