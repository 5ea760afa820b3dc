// error.go — the branded, immutable error value of xgx-errset.
//
// Branding:
//   Err carries only unexported fields and is constructed exclusively by
//   kind templates inside this package. The type itself is the brand — a
//   type assertion to *Err cannot be satisfied by structurally similar
//   foreign values, and no exported constructor exists, so lookalikes like
//   a struct with Kind/Message fields are rejected by every guard.
//
// Lifecycle:
//   A value is created once by exactly one kind and is pure data afterwards.
//   WithCause derives a NEW value (copy-on-write); nothing mutates a
//   published Err.
package xgxerrset

import (
	"encoding/json"
	"time"
)

// Err is one occurrence of a declared domain failure.
type Err struct {
	setName string
	kind    string
	msg     string
	data    fields
	cause   error
	ts      time.Time
	hasTS   bool
	stk     Stack
	format  Format
}

// Error renders the concise form per the format captured at construction.
// A nil receiver renders "<nil>" so a typed-nil value is printable.
func (e *Err) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.format {
	case FormatPlain:
		if e.msg != "" {
			return e.msg
		}
		return e.kind
	case FormatJSON:
		if s, ok := e.jsonString(); ok {
			return s
		}
		fallthrough
	default: // FormatTagged
		if e.msg == "" || e.msg == e.kind {
			return e.kind
		}
		return e.kind + ": " + e.msg
	}
}

func (e *Err) jsonString() (string, bool) {
	b, err := json.Marshal(struct {
		Set     string         `json:"set,omitempty"`
		Kind    string         `json:"kind"`
		Message string         `json:"message,omitempty"`
		Data    map[string]any `json:"data,omitempty"`
	}{e.setName, e.kind, e.msg, fieldsToMap(e.data)})
	if err != nil {
		// Unserializable data values fall back to the tagged form.
		return "", false
	}
	return string(b), true
}

// Kind returns the kind string this value was constructed under.
func (e *Err) Kind() string { return e.kind }

// SetName returns the name of the set whose kind constructed this value.
func (e *Err) SetName() string { return e.setName }

// Message returns the message built once at construction.
func (e *Err) Message() string { return e.msg }

// Data returns a copy of the extracted data as a map. The returned map is
// safe to mutate; duplicate placeholder keys resolve last-write-wins.
func (e *Err) Data() map[string]any { return fieldsToMap(e.data) }

// Fields returns the extracted data in placeholder order.
func (e *Err) Fields() []Field { return cloneFields(e.data) }

// Cause returns the causal parent, or nil.
func (e *Err) Cause() error { return e.cause }

// Unwrap exposes the cause to stdlib traversal (errors.Is/As).
func (e *Err) Unwrap() error { return e.cause }

// Timestamp returns the construction time and whether one was recorded
// (timestamps are captured only when enabled in settings; absent is not
// the zero time).
func (e *Err) Timestamp() (time.Time, bool) { return e.ts, e.hasTS }

// StackTrace returns a copy of the stack captured at construction, or nil
// when capture was disabled.
func (e *Err) StackTrace() Stack {
	if len(e.stk) == 0 {
		return nil
	}
	out := make(Stack, len(e.stk))
	copy(out, e.stk)
	return out
}

// WithCause returns a NEW value sharing this value's set, kind, message,
// and data, with cause attached. The receiver is unchanged.
func (e *Err) WithCause(cause error) *Err {
	n := e.clone()
	n.cause = cause
	return n
}

// Is makes errors.Is(err, target) work with Kind, *Set, and *Union targets,
// giving an instance-check style interchangeable with calling the guards
// directly. Matching is by kind string, never by set identity, so
// same-named kinds across unrelated sets are indistinguishable here —
// documented behavior, not an error.
func (e *Err) Is(target error) bool {
	if e == nil {
		// A typed-nil value carries no kind; errors.Is reaches this method
		// through the non-nil interface wrapping it.
		return false
	}
	switch t := target.(type) {
	case Kind:
		return e.kind == t.name
	case *Set:
		return t != nil && t.contains(e.kind)
	case *Union:
		return t != nil && t.contains(e.kind)
	}
	return false
}

// DebugString renders the fixed debugger form "<SetName>.<kind> <jsonOfData>".
// It is a pure function of set name, kind, and data; host tooling may call
// it freely.
func (e *Err) DebugString() string {
	payload := "{}"
	if len(e.data) > 0 {
		b, err := json.Marshal(fieldsToMap(e.data))
		if err != nil {
			// Never masquerade as empty data; name the failure instead.
			return e.setName + "." + e.kind + " <unserializable data: " + err.Error() + ">"
		}
		payload = string(b)
	}
	return e.setName + "." + e.kind + " " + payload
}

func (e *Err) clone() *Err {
	n := *e
	n.data = cloneFields(e.data)
	return &n
}
