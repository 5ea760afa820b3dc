// stack_test.go — settings-driven capture, depth bounds, and frame trimming.
package xgxerrset

import (
	"errors"
	"strings"
	"testing"
)

func TestStack_AbsentByDefault(t *testing.T) {
	t.Parallel()

	s := Define("S", "k")
	if stk := s.Kind("k").Err().StackTrace(); stk != nil {
		t.Fatalf("stack must be absent when capture is off: %v", stk)
	}
}

func TestStack_StartsAtConstructorCallSite(t *testing.T) {
	t.Parallel()

	s := Define("S", "k").WithSettings(Settings{
		Format: FormatTagged, IncludeStack: true, StackDepth: 10,
	})
	e := s.Kind("k").Template("x {v}").New(map[string]any{"v": 1})

	stk := e.StackTrace()
	if len(stk) == 0 {
		t.Fatalf("stack must be captured when enabled")
	}
	first := stk[0].Function
	if !strings.Contains(first, "TestStack_StartsAtConstructorCallSite") {
		t.Fatalf("first frame must be the caller, got %q", first)
	}
	for _, fr := range stk {
		if strings.Contains(fr.Function, "newValue") || strings.Contains(fr.Function, "captureStack") {
			t.Fatalf("engine frames must be excluded: %q", fr.Function)
		}
	}
}

func TestStack_SameCallSiteAcrossConstructors(t *testing.T) {
	t.Parallel()

	s := Define("S", "k").WithSettings(Settings{
		Format: FormatTagged, IncludeStack: true, StackDepth: 10,
	})
	tpl := s.Kind("k").Template("x {v}")

	// Every exported constructor must start the stack at its caller.
	for name, e := range map[string]*Err{
		"New":  tpl.New(map[string]any{"v": 1}),
		"Wrap": tpl.Wrap(map[string]any{"v": 1}, errors.New("cause")),
		"Err":  s.Kind("k").Err(),
	} {
		stk := e.StackTrace()
		if len(stk) == 0 {
			t.Fatalf("%s: stack must be captured", name)
		}
		first := stk[0].Function
		if !strings.Contains(first, "TestStack_SameCallSiteAcrossConstructors") {
			t.Fatalf("%s: first frame must be the caller, got %q", name, first)
		}
		for _, fr := range stk {
			for _, engine := range []string{"newValue", "captureStack", ".build", ".New", ".Wrap"} {
				if strings.Contains(fr.Function, engine) {
					t.Fatalf("%s: engine frame %q leaked into the stack", name, fr.Function)
				}
			}
		}
	}
}

func TestStack_TrimmedToConfiguredDepth(t *testing.T) {
	t.Parallel()

	s := Define("S", "k").WithSettings(Settings{
		Format: FormatTagged, IncludeStack: true, StackDepth: 2,
	})
	e := deepConstruct(s, 8)
	if got := len(e.StackTrace()); got > 2 {
		t.Fatalf("stack length = %d, want <= 2", got)
	}
}

func deepConstruct(s *Set, depth int) *Err {
	if depth == 0 {
		return s.Kind("k").Err()
	}
	return deepConstruct(s, depth-1)
}

func TestStack_CopyOnRead(t *testing.T) {
	t.Parallel()

	s := Define("S", "k").WithSettings(Settings{
		Format: FormatTagged, IncludeStack: true, StackDepth: 10,
	})
	e := s.Kind("k").Err()
	stk := e.StackTrace()
	if len(stk) == 0 {
		t.Fatalf("expected a captured stack")
	}
	stk[0].Function = "mutated"
	if e.StackTrace()[0].Function == "mutated" {
		t.Fatalf("StackTrace must return a copy")
	}
}
