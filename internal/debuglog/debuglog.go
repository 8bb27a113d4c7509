// Package debuglog writes a structured JSON-lines trace of input and drag
// lifecycle events when dragcal runs with --debug.
package debuglog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPath is the log file used when no path is configured.
const DefaultPath = "dragcal-debug.log"

var (
	mu     sync.Mutex
	logger = zerolog.Nop()
	file   *os.File
	seq    int
)

// Init enables logging to path. When enabled is false every call becomes a no-op.
func Init(enabled bool, path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	if !enabled {
		logger = zerolog.Nop()
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	file = f
	seq = 0
	logger = newLogger(f)
	logger.Info().Str("event", "DEBUG_START").Str("log_file", path).Send()
	return nil
}

// SetOutput routes the log to w. Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	seq = 0
	if w == nil {
		logger = zerolog.Nop()
		return
	}
	logger = newLogger(w)
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Hook(zerolog.HookFunc(
		func(e *zerolog.Event, _ zerolog.Level, _ string) {
			seq++
			e.Int("seq", seq)
		}))
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
}

// closeFile ends the current log file, if any. Callers hold mu.
func closeFile() {
	if file == nil {
		return
	}
	logger.Info().Str("event", "DEBUG_END").Time("time", time.Now()).Send()
	_ = file.Close()
	file = nil
	logger = zerolog.Nop()
}

// Enabled reports whether events are being recorded.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger.GetLevel() != zerolog.Disabled
}

// Log records an event with arbitrary fields.
func Log(event string, fields map[string]any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debug().Str("event", event).Fields(fields).Send()
}
