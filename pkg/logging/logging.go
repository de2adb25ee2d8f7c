package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var setupOnce sync.Once
var logger zerolog.Logger

// Setup builds the process-wide logger once. The level string follows
// zerolog's names (debug, info, warn, error); anything unknown falls
// back to info.
func Setup(app string, level string) zerolog.Logger {
	setupOnce.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(lvl).
			With().
			Str("app", app).
			Timestamp().
			Logger()
	})
	return logger
}
