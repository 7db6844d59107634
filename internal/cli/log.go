// Package cli implements the clemen command line.
//
// Commands:
//   - run: build a scene file or builtin scene and write each format
//   - list: show the builtin scenes
//   - inspect: walk and edit a built tree in the terminal
//   - serve: start the HTTP preview server
//   - cache: clear or locate the render cache
//
// Diagnostics go to stderr through a charmbracelet logger carried in the
// command context; --verbose lowers it to debug and routes pipeline, cache
// and server events into it. Results go to stdout.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// step times one stage of a command and logs its outcome with the elapsed
// time attached.
type step struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStep(l *log.Logger, name string) step {
	l.Debug("step started", "step", name)
	return step{logger: l, name: name, start: time.Now()}
}

func (s step) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// done logs the step at info level with keyvals appended.
func (s step) done(keyvals ...any) {
	s.logger.Info(s.name, append([]any{"elapsed", s.elapsed()}, keyvals...)...)
}

func (s step) fail(err error) {
	s.logger.Error(s.name+" failed", "elapsed", s.elapsed(), "err", err)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or a logger that discards
// everything when ctx carries none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && l != nil {
		return l
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
