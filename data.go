// data.go — ordered structured data extracted at construction time.
//
// Design:
//   - Internal representation: append-only []Field in placeholder order.
//   - Public view for callers: copy-on-read map[string]any (last-write-wins)
//     plus an ordered copy via (*Err).Fields.
//
// Rationale:
//   - Go map iteration order is unspecified; the slice preserves the order
//     placeholders appeared in the template.
//   - Values are extracted once and never modified, so clones are cheap.
package xgxerrset

// Field is a single key-value pair extracted from an entity by a template
// placeholder.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of extracted data.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

var emptyFields = make(fields, 0)

// cloneFields returns a fresh copy so derived values never alias the
// original backing array.
func cloneFields(fs fields) fields {
	if len(fs) == 0 {
		return emptyFields
	}
	out := make(fields, len(fs))
	copy(out, fs)
	return out
}

// fieldsToMap builds a NEW map from fields (copy-on-read). Duplicate keys
// resolve last-write-wins.
func fieldsToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
