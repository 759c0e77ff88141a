package curve

import (
	"errors"
	"fmt"
)

// NoHandle is used in a [UsageError] that isn't about a particular curve.
const NoHandle Handle = -1

// UsageError reports a bug in glyph data: welding an end twice, evaluating a
// curve whose parameters couldn't be solved, referring to a removed curve and
// the like. Glyph operations panic with a *UsageError; callers such as a
// glyph registry recover it and abandon the glyph being constructed.
type UsageError struct {
	// Glyph is the name of the glyph being built, if known.
	Glyph string
	// Handle is the offending curve, or NoHandle.
	Handle Handle
	// Op is the operation that was misused.
	Op  string
	Msg string
}

func (e *UsageError) Error() string {
	s := "curve: " + e.Op
	if e.Glyph != "" {
		s += " in glyph " + e.Glyph
	}
	if e.Handle != NoHandle {
		s += fmt.Sprintf(" on curve c%d", int(e.Handle))
	}
	return s + ": " + e.Msg
}

// AsUsageError converts a value recovered from a panic into a *UsageError.
// It reports false for any other panic value.
func AsUsageError(r any) (*UsageError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return uerr, true
	}
	return nil, false
}

func usagePanic(op, format string, args ...any) {
	panic(&UsageError{Handle: NoHandle, Op: op, Msg: fmt.Sprintf(format, args...)})
}
