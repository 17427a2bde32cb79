package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports observability events as debug log lines.
// charmbracelet/log serializes writes, so it is safe for the concurrent
// avatar pipeline.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks { return &logHooks{logger: l} }

func (h *logHooks) OnFetchStart(_ context.Context, kind, name string) {
	h.logger.Debug("fetch", "kind", kind, "name", name)
}

func (h *logHooks) OnFetchComplete(_ context.Context, kind, name string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "kind", kind, "name", name, "err", err)
		return
	}
	h.logger.Debug("fetched", "kind", kind, "name", name, "count", count, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnAvatarCached(_ context.Context, username string) {
	h.logger.Debug("avatar cached", "user", username)
}

func (h *logHooks) OnAvatarStored(_ context.Context, username string, size int, d time.Duration) {
	h.logger.Debug("avatar stored", "user", username, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnAvatarFailed(_ context.Context, username string, err error) {
	h.logger.Debug("avatar failed", "user", username, "err", err)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
