// Package zaperr flattens xgx-errset values into zap structured fields.
//
// The core stays policy-free: logging lives here, at the edge. Fields
// produces one zap.Field per piece of error context so aggregation systems
// can index on error.set, error.kind, and individual error.data.* keys.
package zaperr

import (
	"go.uber.org/zap"

	xgxerrset "github.com/xgx-io/xgx-errset"
)

// Fields extracts structured logging fields from err:
//   - error.set:       the declaring set's name
//   - error.kind:      the kind string
//   - error.message:   the constructed message
//   - error.data.<k>:  one field per extracted data key
//   - error.cause:     the causal parent, when present
//   - error.time:      the construction timestamp, when recorded
//
// Foreign errors (no branded value anywhere in the chain) degrade to a
// single zap.Error field. Nil yields nil.
func Fields(err error) []zap.Field {
	if err == nil {
		return nil
	}
	e, ok := xgxerrset.From(err)
	if !ok {
		return []zap.Field{zap.Error(err)}
	}

	fields := []zap.Field{
		zap.String("error.set", e.SetName()),
		zap.String("error.kind", e.Kind()),
		zap.String("error.message", e.Message()),
	}
	for _, f := range e.Fields() {
		fields = append(fields, zap.Any("error.data."+f.Key, f.Val))
	}
	if cause := e.Cause(); cause != nil {
		fields = append(fields, zap.NamedError("error.cause", cause))
	}
	if ts, ok := e.Timestamp(); ok {
		fields = append(fields, zap.Time("error.time", ts))
	}
	return fields
}

// Log writes msg at error level with the structured fields for err.
// Nil logger or nil err is a no-op.
func Log(logger *zap.Logger, msg string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Error(msg, Fields(err)...)
}
