// format.go — fmt.Formatter for xgx-errset values.
//
// Behavior:
//
//	%s, %v   → concise string (Error(), per the captured format).
//	%+v      → verbose, structured multi-line form:
//	             set=<name> kind=<kind> msg="<message>"
//	             time: <RFC3339Nano>            (when recorded)
//	             data: key1=val1 key2=val2 ...  (placeholder order)
//	             cause: <recursively formatted with %+v>
//	             stack:
//	               funcA file.go:123
//	%q       → quoted Error().
//
// Deterministic data order comes from the []Field representation in
// data.go; cause formatting defers to fmt with %+v so nested values render
// their own detail.
package xgxerrset

import (
	"fmt"
	"io"
	"time"
)

// Format implements fmt.Formatter.
func (e *Err) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Err) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "set=%s kind=%s msg=%q", e.setName, e.kind, e.msg)

	if e.hasTS {
		_, _ = fmt.Fprintf(w, "\ntime: %s", e.ts.Format(time.RFC3339Nano))
	}

	if len(e.data) > 0 {
		_, _ = io.WriteString(w, "\ndata:")
		for _, f := range e.data {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
