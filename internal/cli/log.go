// Package cli implements the spangrid command-line interface.
//
// This package provides commands for running headless layout passes over
// scenario files, exploring a grid interactively in the terminal, serving
// layouts over HTTP, and managing persisted scroll state. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - pack: Run a full layout pass over a scenario and export the result
//   - demo: Explore a scenario interactively with keyboard scrolling
//   - serve: Serve layout computation over HTTP
//   - state: Manage persisted scroll state
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command sees the same sink.
//
// # Example
//
//	import "github.com/matzehuels/spangrid/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger shared by all spangrid commands: it
// writes to w, drops messages below level, and stamps each line with a
// sub-second wall clock so layout and fill timings line up.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a single step, typically a layout pass. Create one
// just before the step and call done after it; not goroutine safe.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the time elapsed since newProgress, e.g.
// "Placed 500 items (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps this package's context values out of other packages'
// key spaces.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command does this once per
// invocation so subcommands and HTTP handlers share one sink.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or
// log.Default() when the context never passed through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
