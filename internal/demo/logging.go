package demo

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// initLogger opens the demo's log file and returns a logger plus a cleanup
// function. While the TUI owns the terminal, nothing may write to stderr, so
// all logging goes to the file.
func initLogger(level, path string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "scrolltail-demo").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
	return logger, func() { _ = f.Close() }, nil
}
