package triangulate

import (
	"log/slog"
	"sync/atomic"

	"github.com/ecordell/FrechetPolygons-sub009/internal"
)

func newNopLogger() *slog.Logger { return internal.NopLogger() }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by Triangulate when no per-call logger
// is given. By default, nothing is logged. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: segment insertion, trapezoid splits, stage sizes
//   - [slog.LevelWarn]: recoverable oddities while extracting the inner region
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
