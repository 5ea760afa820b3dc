// Package pretty renders xgx-errset values for terminals and debuggers.
//
// The one-line form is the fixed "<SetName>.<kind> <jsonOfData>" shape;
// the verbose form adds message, data, and the cause chain. Color is
// applied only when the Colors setting is on; rendering is otherwise a
// pure function of set name, kind, and data.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	xgxerrset "github.com/xgx-io/xgx-errset"
)

var (
	kindStyle = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	setStyle  = pterm.NewStyle(pterm.FgCyan)
	keyStyle  = pterm.NewStyle(pterm.FgYellow)
)

// Sprint renders the one-line debugger form of err. Branded values render
// as "<SetName>.<kind> <jsonOfData>", colored when the Colors setting is
// on; foreign errors render as their Error() text; nil renders empty.
func Sprint(err error) string {
	if err == nil {
		return ""
	}
	e, ok := xgxerrset.From(err)
	if !ok {
		return err.Error()
	}
	if !xgxerrset.Current().Colors {
		return e.DebugString()
	}
	plain := e.DebugString()
	// DebugString is "<set>.<kind> <json>"; restyle the head, keep the payload.
	head, payload, _ := strings.Cut(plain, " ")
	set, kind, ok := strings.Cut(head, ".")
	if !ok {
		return plain
	}
	return setStyle.Sprint(set) + "." + kindStyle.Sprint(kind) + " " + payload
}

// Fprint writes Sprint(err) followed by a newline.
func Fprint(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, Sprint(err))
}

// Sprintv renders a multi-line diagnostic: the one-line form, the message,
// each data field on its own line, and the cause chain nearest-first.
func Sprintv(err error) string {
	if err == nil {
		return ""
	}
	e, ok := xgxerrset.From(err)
	if !ok {
		return err.Error()
	}
	colors := xgxerrset.Current().Colors

	var b strings.Builder
	b.WriteString(Sprint(e))
	b.WriteString("\n  message: ")
	b.WriteString(e.Message())
	for _, f := range e.Fields() {
		key := f.Key
		if colors {
			key = keyStyle.Sprint(key)
		}
		fmt.Fprintf(&b, "\n  %s = %v", key, f.Val)
	}
	for cause := e.Cause(); cause != nil; {
		b.WriteString("\n  cause: ")
		b.WriteString(Sprint(cause))
		u, ok := cause.(interface{ Unwrap() error })
		if !ok {
			break
		}
		cause = u.Unwrap()
	}
	return b.String()
}
