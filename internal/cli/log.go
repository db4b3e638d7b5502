// Package cli implements the beautify command-line interface.
//
// The CLI drives a beautify.Session the way a browser front end would: it
// loads a screenshot, applies presets and individual field values, and hands
// the export to a file or stdout sink.
//
// # Commands
//
//   - render: bake a style into a png, jpg or webp file
//   - preview: print the declarative style the live preview would apply
//   - presets: list background and frame presets
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every export state transition.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Exported shot.png (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
