package triangulate

import (
	"github.com/ecordell/FrechetPolygons-sub009/internal"
	"github.com/pkg/errors"
)

// Input errors. Triangulate checks for all of these before doing any work, and
// wraps them with the offending vertex.
var (
	ErrTooFewPoints   = errors.New("polygon needs at least 3 points")
	ErrDuplicateY     = errors.New("vertices share a y coordinate")
	ErrDuplicatePoint = errors.New("vertices share a position")
	ErrOutOfBounds    = errors.New("vertex outside the bounding square")
	ErrNonFinite      = errors.New("vertex coordinate is not finite")
	ErrDegenerate     = errors.New("polygon is degenerate")
	ErrInvalidOption  = errors.New("invalid option")
)

// ErrInvariant is returned when the engine reaches a state that a simple
// polygon cannot produce. This usually means the input was not simple.
var ErrInvariant = internal.ErrInvariant
