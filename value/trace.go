package value

import (
	"fmt"
	"strings"

	"osyris/bstring"
	"osyris/reader"
)

// StackTrace is the error carrier every failing operation returns: a value
// payload (the `error` operator's argument, or a constructed message) plus
// the ordered chain of Call-site locations it unwound through, innermost
// first.
type StackTrace struct {
	Message Value
	Trace   []reader.Location
}

// NewError builds a StackTrace from a static/formatted message string.
func NewError(format string, args ...any) *StackTrace {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &StackTrace{Message: String{Bytes: bstring.FromString(msg)}}
}

// NewErrorValue builds a StackTrace carrying an arbitrary Value as its
// payload — used by the `error` operator.
func NewErrorValue(v Value) *StackTrace {
	return &StackTrace{Message: v}
}

// WithLocation appends loc to the trace (innermost-to-outermost order) and
// returns the same StackTrace, mutated in place — mirroring how a single
// error value accumulates Call-site frames as it unwinds.
func (e *StackTrace) WithLocation(loc reader.Location) *StackTrace {
	e.Trace = append(e.Trace, loc)
	return e
}

// Error implements the error interface so a StackTrace can be surfaced
// through ordinary Go error-handling paths (e.g. the CLI's exit-code path).
func (e *StackTrace) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message.Display())
	for _, loc := range e.Trace {
		fmt.Fprintf(&sb, "\n  at %s:%d:%d", loc.File.String(), loc.Line, loc.Column)
	}
	return sb.String()
}
