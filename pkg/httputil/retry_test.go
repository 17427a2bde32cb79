package httputil

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestBackoffDo(t *testing.T) {
	transient := &TransientError{Err: errors.New("503")}
	permanent := errors.New("404")

	tests := []struct {
		name      string
		retries   int
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{"success first try", 2, []error{nil}, 1, nil},
		{"success after transient", 2, []error{transient, nil}, 2, nil},
		{"permanent stops immediately", 2, []error{permanent, nil}, 1, permanent},
		{"exhausted", 1, []error{transient, transient, nil}, 2, transient},
		{"retries disabled", 0, []error{transient, nil}, 1, transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Backoff{Retries: tt.retries, Initial: time.Millisecond}
			calls := 0
			err := b.Do(context.Background(), func() error {
				err := tt.errs[calls]
				calls++
				return err
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffDo_MaxCapsServerHint(t *testing.T) {
	b := Backoff{Retries: 1, Initial: time.Hour, Max: 5 * time.Millisecond}
	calls := 0
	start := time.Now()
	err := b.Do(context.Background(), func() error {
		calls++
		if calls == 1 {
			return &TransientError{Err: errors.New("503"), After: time.Hour}
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("err = %v, calls = %d", err, calls)
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("waited %v, want the capped delay", d)
	}
}

func TestBackoffDo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := NewBackoff(3).Do(ctx, func() error {
		calls++
		return &TransientError{Err: errors.New("boom")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTransient(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "7")
	err := Transient(errors.New("502"), h)
	if !IsTransient(errors.Join(errors.New("ctx"), err)) {
		t.Error("IsTransient(joined) = false, want true")
	}
	var te *TransientError
	if !errors.As(err, &te) || te.After != 7*time.Second {
		t.Errorf("After = %v, want 7s", te.After)
	}
	if IsTransient(errors.New("plain")) {
		t.Error("IsTransient(plain) = true, want false")
	}
}

func TestRetryAfter(t *testing.T) {
	tests := map[string]time.Duration{
		"":                              0,
		"30":                            30 * time.Second,
		"-1":                            0,
		"Wed, 21 Oct 2015 07:28:00 GMT": 0,
	}
	for v, want := range tests {
		h := http.Header{}
		if v != "" {
			h.Set("Retry-After", v)
		}
		if got := RetryAfter(h); got != want {
			t.Errorf("RetryAfter(%q) = %v, want %v", v, got, want)
		}
	}
	if RetryAfter(nil) != 0 {
		t.Error("RetryAfter(nil) != 0")
	}
}
