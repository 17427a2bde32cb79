package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, LogDebug))
	ctx := context.Background()

	h.OnFetchComplete(ctx, "followers", "alice", 3, 5*time.Millisecond, nil)
	h.OnAvatarFailed(ctx, "bob", errors.New("status 500"))
	h.OnResponse(ctx, "GET", "api.github.com", "/users/alice", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"fetched", "alice", "avatar failed", "bob", "status 500", "http response", "/users/alice"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, LogInfo))
	h.OnRequest(context.Background(), "GET", "api.github.com", "/users/alice")
	if buf.Len() != 0 {
		t.Errorf("debug hook logged at info level: %q", buf.String())
	}
}
