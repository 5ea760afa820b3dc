// merge.go — ephemeral union guards over two sets (or unions).
//
// A merged view concatenates both kind lists verbatim — duplicates across
// the inputs are preserved, not collapsed — and carries a guard plus kind
// iteration but no kind functions. Per-kind disambiguation after a merge
// goes back through the original sets. Merge never mutates its inputs and
// is recomputed on each call.
package xgxerrset

import (
	"iter"
	"strings"
)

// Guard is the common surface of Set and Union: a total predicate over the
// branded values plus an ordered view of the kinds it recognizes. Recover,
// Inspect, and Merge accept any Guard, so unions compose.
type Guard interface {
	Is(err error) bool
	Kinds() []string
	All() iter.Seq[string]
}

var (
	_ Guard = (*Set)(nil)
	_ Guard = (*Union)(nil)
)

// Union is the ephemeral guard produced by Merge. Entity typing is erased:
// a union only knows kind strings.
type Union struct {
	kinds   []string
	members map[string]struct{}
}

// Merge returns a guard over the concatenation of both kind lists. A nil
// guard contributes nothing, keeping Merge total.
func Merge(a, b Guard) *Union {
	var ka, kb []string
	if a != nil {
		ka = a.Kinds()
	}
	if b != nil {
		kb = b.Kinds()
	}
	kinds := make([]string, 0, len(ka)+len(kb))
	kinds = append(kinds, ka...)
	kinds = append(kinds, kb...)
	members := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		members[k] = struct{}{}
	}
	return &Union{kinds: kinds, members: members}
}

// Is reports whether err is a value of any kind in the union.
func (u *Union) Is(err error) bool {
	e, ok := err.(*Err)
	return ok && e != nil && u.contains(e.kind)
}

func (u *Union) contains(kind string) bool {
	_, ok := u.members[kind]
	return ok
}

// Kinds returns the concatenated kind list, duplicates and order preserved.
func (u *Union) Kinds() []string {
	out := make([]string, len(u.kinds))
	copy(out, u.kinds)
	return out
}

// All yields the concatenated kinds in order, duplicates included.
func (u *Union) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range u.kinds {
			if !yield(k) {
				return
			}
		}
	}
}

// Error lets a Union serve as an errors.Is target (see Err.Is).
func (u *Union) Error() string { return strings.Join(u.kinds, "|") }
