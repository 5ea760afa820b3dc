// merge_test.go — union guards and kind-list concatenation.
package xgxerrset

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_ConcatenatesKindsVerbatim(t *testing.T) {
	t.Parallel()

	users := Define("UserErrors", "not_found", "invalid")
	files := Define("FileErrors", "not_found", "locked")

	u := Merge(users, files)
	want := []string{"not_found", "invalid", "not_found", "locked"}
	if diff := cmp.Diff(want, u.Kinds()); diff != "" {
		t.Fatalf("merged kinds (-want +got):\n%s", diff)
	}

	// Duplicates survive iteration too.
	var seen []string
	for k := range u.All() {
		seen = append(seen, k)
	}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("merged iteration (-want +got):\n%s", diff)
	}
}

func TestMerge_GuardAcceptsBothSets(t *testing.T) {
	t.Parallel()

	users := Define("UserErrors", "not_found")
	orders := Define("OrderErrors", "rejected")
	other := Define("Other", "oops")

	u := Merge(users, orders)
	if !u.Is(users.Kind("not_found").Err()) {
		t.Fatalf("union must accept values from the first set")
	}
	if !u.Is(orders.Kind("rejected").Err()) {
		t.Fatalf("union must accept values from the second set")
	}
	if u.Is(other.Kind("oops").Err()) {
		t.Fatalf("union must reject kinds of neither input")
	}
	if u.Is(errors.New("rejected")) {
		t.Fatalf("union must reject unbranded errors")
	}

	// errors.Is interop with the union as target.
	if !errors.Is(users.Kind("not_found").Err(), u) {
		t.Fatalf("errors.Is must accept a union target")
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := Define("A", "x")
	b := Define("B", "y")
	_ = Merge(a, b)
	if diff := cmp.Diff([]string{"x"}, a.Kinds()); diff != "" {
		t.Fatalf("input A changed:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"y"}, b.Kinds()); diff != "" {
		t.Fatalf("input B changed:\n%s", diff)
	}
}

func TestMerge_ComposesAndToleratesNil(t *testing.T) {
	t.Parallel()

	a := Define("A", "x")
	b := Define("B", "y")
	c := Define("C", "z")

	nested := Merge(Merge(a, b), c)
	if diff := cmp.Diff([]string{"x", "y", "z"}, nested.Kinds()); diff != "" {
		t.Fatalf("nested merge (-want +got):\n%s", diff)
	}

	lone := Merge(a, nil)
	if diff := cmp.Diff([]string{"x"}, lone.Kinds()); diff != "" {
		t.Fatalf("nil input should contribute nothing:\n%s", diff)
	}
	if !lone.Is(a.Kind("x").Err()) {
		t.Fatalf("guard over the remaining set must still work")
	}
}
