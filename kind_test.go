// kind_test.go — template construction, data extraction, guards, coercion.
package xgxerrset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemplate_MessageRoundTrip(t *testing.T) {
	t.Parallel()

	users := Define("UserErrors", "not_found")
	e := users.Kind("not_found").Template("User {id} not found").
		New(map[string]any{"id": "123"})
	if got := e.Message(); got != "User 123 not found" {
		t.Fatalf("message = %q, want %q", got, "User 123 not found")
	}
}

func TestTemplate_DataExactlyReferencedKeys(t *testing.T) {
	t.Parallel()

	users := Define("UserErrors", "invalid")
	tmpl := users.Kind("invalid").Template("field {field} of {entity} invalid")

	e := tmpl.New(map[string]any{
		"field":  "email",
		"entity": "user",
		"extra1": "dropped",
		"extra2": 42,
	})
	want := map[string]any{"field": "email", "entity": "user"}
	if diff := cmp.Diff(want, e.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	// Placeholder order is preserved in the ordered view.
	fs := e.Fields()
	if len(fs) != 2 || fs[0].Key != "field" || fs[1].Key != "entity" {
		t.Fatalf("fields out of order: %v", fs)
	}
}

func TestTemplate_MissingKeysCoerceEmpty(t *testing.T) {
	t.Parallel()

	s := Define("S", "oops")
	e := s.Kind("oops").Template("a {gone} b").New(map[string]any{"other": 1})
	if got := e.Message(); got != "a  b" {
		t.Fatalf("missing key should render empty: %q", got)
	}
	if len(e.Data()) != 0 {
		t.Fatalf("keys absent from the entity must not appear in data: %v", e.Data())
	}

	// Present-but-nil renders empty yet stays in data.
	e2 := s.Kind("oops").Template("a {v} b").New(map[string]any{"v": nil})
	if got := e2.Message(); got != "a  b" {
		t.Fatalf("nil value should render empty: %q", got)
	}
	if _, ok := e2.Data()["v"]; !ok {
		t.Fatalf("nil value for a present key should remain in data")
	}
}

func TestTemplate_StructEntities(t *testing.T) {
	t.Parallel()

	type user struct {
		ID    string
		Email string
	}
	s := Define("S", "nf")
	tmpl := s.Kind("nf").Template("user {id} <{Email}> missing")

	e := tmpl.New(user{ID: "u1", Email: "a@b"})
	if got := e.Message(); got != "user u1 <a@b> missing" {
		t.Fatalf("struct extraction: %q", got)
	}

	// Pointer entities dereference; nil pointers extract nothing.
	e2 := tmpl.New(&user{ID: "u2", Email: "c@d"})
	if got := e2.Data()["id"]; got != "u2" {
		t.Fatalf("pointer entity: id=%v", got)
	}
	var nilUser *user
	e3 := tmpl.New(nilUser)
	if len(e3.Data()) != 0 {
		t.Fatalf("nil entity must extract nothing: %v", e3.Data())
	}
}

func TestTemplate_LenientParsing(t *testing.T) {
	t.Parallel()

	s := Define("S", "k")
	cases := []struct {
		format string
		entity map[string]any
		want   string
	}{
		{"no placeholders", nil, "no placeholders"},
		{"unclosed {brace", nil, "unclosed {brace"},
		{"empty {} braces", nil, "empty {} braces"},
		{"{not a key}", nil, "{not a key}"},
		{"nested {{id}", map[string]any{"id": 7}, "nested {7"},
		{"{id}{id}", map[string]any{"id": "x"}, "xx"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			e := s.Kind("k").Template(tc.format).New(tc.entity)
			if got := e.Message(); got != tc.want {
				t.Fatalf("Template(%q) message = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}

func TestKindGuard_ExactKindOnly(t *testing.T) {
	t.Parallel()

	users := Define("UserErrors", "not_found", "invalid")
	nf := users.Kind("not_found")
	inv := users.Kind("invalid")

	e := nf.Template("user {id} missing").New(map[string]any{"id": 1})
	if !nf.Is(e) {
		t.Fatalf("constructing kind's guard must accept the value")
	}
	if inv.Is(e) {
		t.Fatalf("every other kind's guard must reject it")
	}
	if !users.Is(e) {
		t.Fatalf("owning set's guard must accept the value")
	}
	if nf.Is(nil) || nf.Is(errors.New("not_found")) {
		t.Fatalf("guard must reject nil and unbranded errors")
	}
	if nf.Is(fakeErr{kind: "not_found"}) {
		t.Fatalf("guard must reject lookalikes without the brand")
	}
}

func TestKindCoercion_AllStringContexts(t *testing.T) {
	t.Parallel()

	s := Define("S", "not_found")
	k := s.Kind("not_found")

	if got := fmt.Sprintf("%v", k); got != "not_found" {
		t.Fatalf("%%v coercion = %q", got)
	}
	if got := fmt.Sprintf("%s", k); got != "not_found" {
		t.Fatalf("%%s coercion = %q", got)
	}
	if got := fmt.Sprintf("kind is %s!", k); got != "kind is not_found!" {
		t.Fatalf("interpolation = %q", got)
	}
	if got := "prefix_" + k.String(); got != "prefix_not_found" {
		t.Fatalf("concatenation = %q", got)
	}
	if got := string(k.Name()); got != "not_found" {
		t.Fatalf("explicit conversion = %q", got)
	}
}

func TestKindErr_ZeroContextShortcut(t *testing.T) {
	t.Parallel()

	s := Define("S", "conflict")
	k := s.Kind("conflict")

	e := k.Err()
	if !k.Is(e) || !s.Is(e) {
		t.Fatalf("zero-context value must satisfy both guards")
	}
	if len(e.Data()) != 0 {
		t.Fatalf("zero-context value must carry empty data: %v", e.Data())
	}

	cause := errors.New("db down")
	e2 := e.WithCause(cause)
	if e2 == e {
		t.Fatalf("WithCause must derive a new value")
	}
	if e2.Kind() != e.Kind() || e2.Message() != e.Message() {
		t.Fatalf("derived value must share kind and message")
	}
	if e2.Cause() != cause {
		t.Fatalf("derived value must carry the supplied cause")
	}
	if e.Cause() != nil {
		t.Fatalf("original must remain causeless")
	}
}

func TestTemplateWrap_CauseAtConstruction(t *testing.T) {
	t.Parallel()

	s := Define("S", "io")
	cause := errors.New("disk full")
	e := s.Kind("io").Template("write {path} failed").
		Wrap(map[string]any{"path": "/tmp/x"}, cause)
	if e.Cause() != cause {
		t.Fatalf("Wrap must attach the cause")
	}
	if !errors.Is(e, cause) {
		t.Fatalf("stdlib traversal must reach the cause")
	}
}
