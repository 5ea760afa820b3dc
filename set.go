// set.go — declared error sets and their guards.
//
// A set is created once per declaration and lives for the process lifetime;
// it is immutable after construction. Duplicate kinds are rejected at
// declaration time: Go has no literal-tuple type recursion, so the
// compile-time layer of the original design is deferred to Define, which is
// the sole enforcement point (a linear seen-set scan that panics citing the
// duplicate and the set's name).
package xgxerrset

import (
	"fmt"
	"iter"
)

// Set is a named, ordered, closed list of kind strings with a guard over
// any of them. Two sets with the same name and kinds are independent
// instances; guards match by kind membership, not set identity.
type Set struct {
	name     string
	kinds    []string
	members  map[string]struct{}
	override *Settings
}

// Define declares a new error set. It panics on a duplicate or empty kind —
// declaration-time programmer errors, like a malformed regexp handed to
// regexp.MustCompile.
func Define(name string, kinds ...string) *Set {
	members := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		if k == "" {
			panic(fmt.Sprintf("xgxerrset: empty kind in set %q", name))
		}
		if _, dup := members[k]; dup {
			panic(fmt.Sprintf("xgxerrset: duplicate kind %q in set %q", k, name))
		}
		members[k] = struct{}{}
	}
	owned := make([]string, len(kinds))
	copy(owned, kinds)
	return &Set{name: name, kinds: owned, members: members}
}

// Name returns the set's declared name.
func (s *Set) Name() string { return s.name }

// Len returns the number of declared kinds.
func (s *Set) Len() int { return len(s.kinds) }

// Error returns the set name so a Set can serve as an errors.Is target
// (see Err.Is); it carries no failure semantics of its own.
func (s *Set) Error() string { return s.name }

// Is reports whether err is a value of any kind in this set. Total: never
// panics, nil-safe (including a typed-nil *Err inside a non-nil error
// interface), O(1) membership after the brand check.
func (s *Set) Is(err error) bool {
	e, ok := err.(*Err)
	return ok && e != nil && s.contains(e.kind)
}

func (s *Set) contains(kind string) bool {
	_, ok := s.members[kind]
	return ok
}

// Kinds returns the declared kinds in declaration order. The returned
// slice is the caller's to mutate.
func (s *Set) Kinds() []string {
	out := make([]string, len(s.kinds))
	copy(out, s.kinds)
	return out
}

// All yields each kind string once, in declaration order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range s.kinds {
			if !yield(k) {
				return
			}
		}
	}
}

// Kind returns the kind function for a declared kind name. It panics on an
// undeclared name: kind lookups happen at declaration sites alongside
// Define, and a typo there is a programmer error.
func (s *Set) Kind(name string) Kind {
	if !s.contains(name) {
		panic(fmt.Sprintf("xgxerrset: set %q has no kind %q", s.name, name))
	}
	return Kind{set: s, name: name}
}

// WithSettings returns a NEW set whose constructors read the given settings
// instead of the global store. The receiver and the global store are
// unchanged; kinds obtained from the returned set construct under the
// override.
func (s *Set) WithSettings(st Settings) *Set {
	return &Set{name: s.name, kinds: s.kinds, members: s.members, override: &st}
}

// settings returns the snapshot constructors read: the per-set override
// when present, otherwise the global store right now (never cached).
func (s *Set) settings() Settings {
	if s.override != nil {
		return *s.override
	}
	return Current()
}
