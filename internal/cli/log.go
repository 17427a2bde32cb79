package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const timeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true, TimeFormat: timeFormat})
	l.SetLevel(level)
	return l
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// stage times one step of a run (fetch, avatars, render) and logs its
// outcome with the elapsed time under the "took" key.
type stage struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStage(ctx context.Context, name string) *stage {
	l := loggerFromContext(ctx)
	l.Debug("stage started", "stage", name)
	return &stage{logger: l, name: name, start: time.Now()}
}

func (s *stage) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

func (s *stage) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "took", s.elapsed())...)
}

// failed logs err at debug level; the error itself reaches the user
// through the command's return value.
func (s *stage) failed(err error) {
	s.logger.Debug("stage failed", "stage", s.name, "err", err, "took", s.elapsed())
}
