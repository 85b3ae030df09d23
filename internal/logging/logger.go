package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix is printed before every log line.
const Prefix = "pitchdeck"

// New creates a configured application logger writing to w, normally
// stderr so stdout stays free for command output.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// NewNop returns a logger that discards everything.
func NewNop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel reads a level name such as "debug" or "warn".
func ParseLevel(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
