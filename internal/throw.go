package internal

import "github.com/pkg/errors"

// Threading errors up and down all the recursive operations during
// trapezoidization and triangulation would add a ton of complexity to the code.
// Instead, we use panics, and the public API recovers to convert to an error.

// ErrInvariant is wrapped by every error raised from inside the engine. It
// means the neighbor graph or query graph reached a state that a simple
// polygon cannot produce.
var ErrInvariant = errors.New("triangulation invariant broken")

type triangulateError struct {
	error
}

func (e triangulateError) Unwrap() error { return e.error }

// Panic with a triangulateError.
func fatalf(format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(ErrInvariant, format, args...)})
}

// Convert a recovered triangulation panic into an error. Any other panic is
// re-raised, since it is a genuine bug.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}
