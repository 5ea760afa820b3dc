// walk.go — cause-chain traversal and extraction helpers.
//
// Cause chains are singly linked and assumed acyclic (acyclicity is a
// construction invariant, not runtime-enforced), so traversal is a bounded
// linear walk over Unwrap() error. Foreign causes interleave freely with
// branded values.
package xgxerrset

import "errors"

// maxChainDepth bounds traversal against pathological chains.
const maxChainDepth = 1 << 10

// From extracts the nearest branded value from err's cause chain via
// errors.As. It returns (nil, false) for nil, purely foreign errors, and a
// typed-nil *Err (errors.As matches one, but it carries no value).
func From(err error) (*Err, bool) {
	var e *Err
	if err == nil || !errors.As(err, &e) || e == nil {
		return nil, false
	}
	return e, true
}

// WalkCauses visits err and each cause in order, nearest first, stopping
// when visit returns false. Nil err is a no-op.
func WalkCauses(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if !visit(err) {
			return
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return
		}
		err = u.Unwrap()
	}
}

// RootCause returns the deepest error in err's cause chain, or nil for nil.
func RootCause(err error) error {
	var last error
	WalkCauses(err, func(e error) bool {
		last = e
		return true
	})
	return last
}
