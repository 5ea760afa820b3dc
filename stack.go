// stack.go — settings-driven stack capture for xgx-errset.
//
// Capture happens only when the settings in effect at construction enable
// it, trimmed to the configured depth. The recorded stack starts at the
// user-visible constructor call site; the engine's own frames are skipped.
//
// Uses runtime.Callers + runtime.CallersFrames so inlined frames resolve
// correctly (CallersFrames is preferred over FuncForPC for this reason).
package xgxerrset

import (
	"runtime"
)

// Frame represents a single call site in a captured stack.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// fallbackStackDepth bounds capture when a per-set override carries a
// non-positive depth.
const fallbackStackDepth = 10

// captureStack captures up to depth frames, skipping 'skip' frames above
// this function.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
//
// so skip counts only the engine frames between captureStack and the user
// call site (e.g. newValue and the constructor method above it).
func captureStack(skip, depth int) Stack {
	if depth <= 0 {
		depth = fallbackStackDepth
	}

	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	if len(out) > depth {
		out = out[:depth]
	}
	return out
}
