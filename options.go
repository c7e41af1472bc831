package triangulate

import (
	"log/slog"
	"math/rand"

	"github.com/ecordell/FrechetPolygons-sub009/internal"
	"github.com/pkg/errors"
)

type options struct {
	rand        *rand.Rand
	seed        int64
	bound       float64
	logger      *slog.Logger
	allowEqualY bool
	err         error
}

func defaultOptions() options {
	return options{
		bound: internal.DefaultBound,
	}
}

// Option configures a call to Triangulate.
type Option func(*options)

// WithSeed seeds the shuffle that decides the order segments are inserted in.
// The result is a valid triangulation for every seed; the seed only changes
// which one, and how long it takes to build. Defaults to 0. Ignored when
// WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRand uses r for the insertion shuffle, overriding any seed regardless of
// option order.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.err = errors.Wrap(ErrInvalidOption, "nil rand")
			return
		}
		o.rand = r
	}
}

// WithBound sets the half width of the bounding square around the origin.
// Every vertex must lie strictly inside it. Defaults to 500.
func WithBound(bound float64) Option {
	return func(o *options) {
		if !(bound > 0) {
			o.err = errors.Wrapf(ErrInvalidOption, "bound must be positive, got %g", bound)
			return
		}
		o.bound = bound
	}
}

// WithLogger logs this call to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// AllowEqualY accepts vertices that share a y coordinate. Ties are broken by x,
// as if the plane were rotated very slightly clockwise.
func AllowEqualY() Option {
	return func(o *options) {
		o.allowEqualY = true
	}
}
