package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          appName,
	})
}

// stageTimer logs how long each stage of a command took.
type stageTimer struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

func newStageTimer(l *log.Logger) *stageTimer {
	now := time.Now()
	return &stageTimer{logger: l, start: now, last: now}
}

// lap logs the time spent since the previous lap at debug level.
func (t *stageTimer) lap(stage string) {
	now := time.Now()
	t.logger.Debug("stage", "name", stage, "took", now.Sub(t.last).Round(time.Microsecond))
	t.last = now
}

// done logs msg with the total time rounded to the millisecond, e.g.
// "Rendered 2 artifact(s) (12ms)".
func (t *stageTimer) done(msg string) {
	t.logger.Infof("%s (%s)", msg, time.Since(t.start).Round(time.Millisecond))
}

type loggerKey struct{}

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
