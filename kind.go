// kind.go — per-kind constructors, guards, and string coercion.
//
// The original dual-purpose callable (one function dispatching on argument
// shape) is split into explicit methods, one per behavior:
//
//	Constructor mode → Kind.Template(format).New(entity)
//	Guard mode       → Kind.Is(err)
//	Coercion mode    → Kind.String() / Kind.Error()
//
// Templates use {key} placeholders. Parsing is total: text that does not
// form a placeholder (unclosed brace, empty or non-identifier key) stays
// literal, so template construction never fails.
package xgxerrset

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Kind identifies one member of a set's closed vocabulary. Obtain kinds
// from Set.Kind; the zero Kind belongs to no set and guards nothing.
type Kind struct {
	set  *Set
	name string
}

// Name returns the kind string.
func (k Kind) Name() string { return k.name }

// String returns exactly the kind string, so a Kind interpolates into
// messages and concatenations as its short tag.
func (k Kind) String() string { return k.name }

// Error returns the kind string. Implementing error lets a Kind serve as
// an errors.Is target (see Err.Is).
func (k Kind) Error() string { return k.name }

// Is reports whether err is a value of exactly this kind. The check is on
// the value itself, not its cause chain; use errors.Is(err, kind) for
// chain-aware matching. Matching is by kind string (strict equality, no
// case folding), never by set identity.
func (k Kind) Is(err error) bool {
	e, ok := err.(*Err)
	return ok && e != nil && e.kind == k.name
}

// Err returns the complete no-context value for this kind: kind and message
// populated, data empty. Use WithCause on the result to derive a caused
// twin sharing kind and message.
func (k Kind) Err() *Err {
	return k.newValue(k.name, emptyFields, nil, 1)
}

// Template parses format into a message template. Placeholder keys name
// entity fields that drive both interpolation and data extraction.
func (k Kind) Template(format string) Template {
	segs, keys := parseTemplate(format)
	return Template{kind: k, segs: segs, keys: keys}
}

// Template is a parsed message template bound to one kind. Segments always
// number one more than placeholder keys.
type Template struct {
	kind Kind
	segs []string
	keys []string
}

// Keys returns the placeholder keys in template order.
func (t Template) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// New constructs a value from entity. Exactly the placeholder keys are
// extracted into data, in placeholder order; entity fields not referenced
// are dropped. The message interleaves segments with the stringified
// values, coercing missing or nil values to the empty string. Keys the
// entity does not carry are omitted from data.
func (t Template) New(entity any) *Err {
	return t.build(entity, nil)
}

// Wrap is New with a cause attached at construction.
func (t Template) Wrap(entity any, cause error) *Err {
	return t.build(entity, cause)
}

// build is the shared body of New and Wrap. Both sit exactly one frame
// above it, so the captured stack starts at their caller either way.
func (t Template) build(entity any, cause error) *Err {
	var msg strings.Builder
	data := emptyFields
	if len(t.keys) > 0 {
		data = make(fields, 0, len(t.keys))
	}
	for i, key := range t.keys {
		msg.WriteString(t.segs[i])
		v, ok := lookupEntityField(entity, key)
		if !ok {
			continue
		}
		data = append(data, Field{Key: key, Val: v})
		if v != nil {
			msg.WriteString(fmt.Sprint(v))
		}
	}
	msg.WriteString(t.segs[len(t.segs)-1])
	return t.kind.newValue(msg.String(), data, cause, 2)
}

// newValue stamps a value under the settings in effect right now — the
// set's override when present, the global store otherwise. skip counts the
// exported-constructor frames between newValue and the user call site.
func (k Kind) newValue(msg string, data fields, cause error, skip int) *Err {
	st := k.set.settings()
	e := &Err{
		setName: k.set.name,
		kind:    k.name,
		msg:     msg,
		data:    data,
		cause:   cause,
		format:  st.Format,
	}
	if st.IncludeTimestamp {
		e.ts = time.Now()
		e.hasTS = true
	}
	if st.IncludeStack {
		// +1 for newValue itself
		e.stk = captureStack(skip+1, st.StackDepth)
	}
	return e
}

// parseTemplate splits format into literal segments and placeholder keys.
// len(segs) == len(keys)+1 always holds.
func parseTemplate(format string) (segs, keys []string) {
	var seg strings.Builder
	i := 0
	for i < len(format) {
		open := strings.IndexByte(format[i:], '{')
		if open < 0 {
			seg.WriteString(format[i:])
			break
		}
		open += i
		end := strings.IndexByte(format[open:], '}')
		if end < 0 {
			seg.WriteString(format[i:])
			break
		}
		end += open
		key := format[open+1 : end]
		if !validPlaceholderKey(key) {
			// Not a placeholder; keep the brace literal and rescan after it.
			seg.WriteString(format[i : open+1])
			i = open + 1
			continue
		}
		seg.WriteString(format[i:open])
		segs = append(segs, seg.String())
		seg.Reset()
		keys = append(keys, key)
		i = end + 1
	}
	segs = append(segs, seg.String())
	return segs, keys
}

func validPlaceholderKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}

// lookupEntityField extracts the named field from entity. Maps with string
// keys are read directly; structs match the exact field name first, then
// case-insensitively (mirroring encoding/json). Pointers are dereferenced.
func lookupEntityField(entity any, key string) (any, bool) {
	switch m := entity.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case map[string]string:
		v, ok := m[key]
		return v, ok
	}

	rv := reflect.ValueOf(entity)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		rt := rv.Type()
		if f, ok := rt.FieldByName(key); ok && f.IsExported() {
			return rv.FieldByIndex(f.Index).Interface(), true
		}
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.IsExported() && strings.EqualFold(f.Name, key) {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}
