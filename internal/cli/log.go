// Package cli implements the fcactx command-line interface.
//
// This package provides commands for inspecting formal contexts, converting
// them between the registered file formats, and combining or transforming
// them. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - formats, detect: list formats and identify the format of a file
//   - info, show, browse: inspect a context as statistics, a cross table or
//     an interactive object browser
//   - convert, transform, combine: write contexts in any registered format
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports every format detection, read and write. Loggers are passed through
// context.Context. --metrics-file additionally records those events as
// Prometheus metrics.
//
// # Example
//
//	import "github.com/matzehuels/fcactx/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
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

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Converted animals.cxt (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports codec events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnDetect(source, format string, ok bool) {
	if !ok {
		h.logger.Debug("format not recognized", "source", source)
		return
	}
	h.logger.Debug("detected format", "source", source, "format", format)
}

func (h logHooks) OnRead(format string, objects, attributes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "format", format, "err", err, "took", d)
		return
	}
	h.logger.Debug("read context", "format", format, "objects", objects, "attributes", attributes, "took", d)
}

func (h logHooks) OnWrite(format string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "format", format, "err", err, "took", d)
		return
	}
	h.logger.Debug("wrote context", "format", format, "bytes", n, "took", d)
}
