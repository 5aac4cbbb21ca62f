// Package invariant reports internal-consistency violations inside the
// compilation pipeline. A violation means an upstream stage produced a
// malformed tree, not that the user wrote a bad program, so it panics
// and is never recovered.
package invariant

import "fmt"

type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// Violationf panics with an Error built from the given format string.
func Violationf(format string, args ...any) {
	panic(&Error{msg: fmt.Sprintf(format, args...)})
}

// Check panics via Violationf when cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		Violationf(format, args...)
	}
}
