// Package debug provides diagnostics for tapestry runs.
package debug

import (
	"io"
	"log"
	"os"
	"time"
)

// Enabled returns true if debug mode is active (TAPESTRY_DEBUG=1).
func Enabled() bool {
	return os.Getenv("TAPESTRY_DEBUG") == "1"
}

// NewLogger returns a logger writing to w in debug mode and discarding
// everything otherwise.
func NewLogger(w io.Writer) *log.Logger {
	if !Enabled() {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "", log.LstdFlags)
}

// Monitor times one render and reports it through its logger.
type Monitor struct {
	logger  *log.Logger
	variant string
	start   time.Time
}

// Start begins timing a render of the named variant.
func Start(logger *log.Logger, variant string) *Monitor {
	logger.Printf("[DEBUG] rendering %s", variant)
	return &Monitor{logger: logger, variant: variant, start: time.Now()}
}

// Done logs the render's size and duration.
func (m *Monitor) Done(lines int, bytes int64) {
	m.logger.Printf("[DEBUG] rendered %s: lines=%d bytes=%d elapsed=%s",
		m.variant, lines, bytes, time.Since(m.start).Round(time.Microsecond))
}
