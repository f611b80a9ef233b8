package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// verbosityLevel maps the -v count flag to a log level: the default is
// warnings only, one -v enables info, two or more enable debug.
func verbosityLevel(count int) log.Level {
	switch {
	case count <= 0:
		return log.WarnLevel
	case count == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is meant for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
// Example output: "Batch finished (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
