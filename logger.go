package ricochet

import (
	"log/slog"

	"github.com/arrowline/ricochet/internal/obslog"
)

// SetLogger configures the logger used by this package and its
// sub-packages (bypass and visibility log through it; trajectory does not
// log). By default no log output is produced. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging
// (restore default silent behavior).
//
// Log levels in use:
//   - [slog.LevelDebug]: a plan surface dropped by the player-side,
//     cursor-side or obstruction check, and a propagation stage trimmed or
//     blocked to nothing
//   - [slog.LevelWarn]: the bypass walk reached its exhaustion limit
//
// Example:
//
//	ricochet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	obslog.Set(l)
}

// Logger returns the current logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return obslog.Get()
}
