package auxengine

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the subsystem's base logger from AuxEngineVerbosity
// (0-10), per SPEC_FULL.md §10. Verbosity 0 disables logging entirely;
// normal operation is otherwise silent at the default Warn level.
func NewLogger(verbosity int, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	var level zerolog.Level
	switch {
	case verbosity <= 0:
		level = zerolog.Disabled
	case verbosity <= 3:
		level = zerolog.WarnLevel
	case verbosity <= 6:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
