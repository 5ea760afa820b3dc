// doc.go — package documentation for xgx-errset
//
// Package xgxerrset lets application code declare closed sets of expected
// domain failures ("kinds"), construct them with structured context, and
// check/handle them with guarantees about exhaustiveness and provenance.
// Errors stay ordinary return values; panics are reserved for defects.
// It is designed to be:
//   - Ergonomic at call sites (declare once, construct and match by kind)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core; adapters live in
//     the zaperr and pretty subpackages)
//
// # Declaring Sets
//
// A set is a named, ordered, closed vocabulary of kind strings. Duplicate
// kinds are rejected at declaration time with a panic, so declare sets as
// package variables:
//
//	var Users = xgxerrset.Define("UserErrors", "not_found", "invalid")
//
//	var (
//		UserNotFound = Users.Kind("not_found")
//		UserInvalid  = Users.Kind("invalid")
//	)
//
// Looking up an undeclared kind also panics; treat both like
// regexp.MustCompile — declaration-time programmer errors, not runtime
// conditions.
//
// # Constructing Values
//
// Each Kind builds templated, immutable error values. Placeholder keys in
// the template drive both message interpolation and data extraction:
//
//	tmpl := UserNotFound.Template("user {id} not found")
//	err := tmpl.New(map[string]any{"id": "123", "email": "x@y"})
//	// err.Error()  → "not_found: user 123 not found"
//	// err.Data()   → map[id:123]   (email was not referenced, so dropped)
//
// Entities may be maps or structs; struct fields match placeholder keys
// exactly first, then case-insensitively (as encoding/json does). A kind
// with no context is already a complete value:
//
//	err := UserInvalid.Err()
//	err2 := err.WithCause(cause) // new value, same kind/message
//
// # Guards & Interop
//
// Every guard is total: it never panics. Three interchangeable styles:
//
//	UserNotFound.Is(err)         // exact kind, the value itself
//	Users.Is(err)                // any kind in the set
//	errors.Is(err, UserNotFound) // stdlib style; walks the cause chain
//
// Kinds stringify to their kind name (fmt.Stringer), so a kind interpolates
// into messages and compares as its short string tag.
//
// # Handling
//
// Recover reduces a matched error to a plain value, forcing either
// exhaustive per-kind handlers or an explicit Else; a matched kind with
// neither panics by design. Inspect is side-effect-only partial dispatch:
//
//	v, err := xgxerrset.Recover(Users, cached, err, xgxerrset.Handlers[string]{
//		On: map[string]func(*xgxerrset.Err) string{
//			"not_found": func(e *xgxerrset.Err) string { return "anonymous" },
//		},
//		Else: func(e *xgxerrset.Err) string { return "unknown" },
//	})
//
// Merge builds an ephemeral union guard at service boundaries; kind lists
// concatenate verbatim (duplicates preserved) and per-kind disambiguation
// goes back through the original sets.
//
// # Boundaries
//
// Capture and CaptureErr convert defects (panics) and foreign errors into
// set values at explicit boundaries; everywhere else the package never
// recovers on your behalf.
//
// # Settings
//
// A process-wide settings store controls format, stack capture and depth,
// timestamps, and colors. It is read at construction time of each value,
// never cached per set. Configure applies a partial merge; Reset restores
// defaults (stack off, timestamp off, depth 10, tagged format, colors on).
// LoadSettings merges a partial YAML document. A set may carry its own
// override via WithSettings without touching the global store.
//
// # Formatting
//
// Err implements fmt.Formatter:
//   - %v, %s  → concise, single-line Error()
//   - %+v     → verbose, multi-line (set, kind, msg, data, cause, stack)
//   - %q      → quoted Error()
//
// DebugString renders the fixed debugger form "<SetName>.<kind> <jsonOfData>".
//
// # Performance Notes
//
//   - Copy-on-write: WithCause returns a new value; originals never mutate.
//   - Guards are O(1) set-membership checks after a single type assertion.
//   - Stack capture costs only when enabled in settings, trimmed to the
//     configured depth with constructor frames excluded.
//   - Typed data reads (Typed[T]) scan the ordered fields without building
//     a map.
package xgxerrset
