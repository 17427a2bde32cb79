package httputil

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Backoff is the retry policy for idempotent GitHub and avatar requests.
type Backoff struct {
	Retries int           // attempts after the first one; 0 disables retrying
	Initial time.Duration // delay before the first retry, doubled each time
	Max     time.Duration // cap for a single delay, including server hints
}

// NewBackoff returns a policy with retries extra attempts, starting at one
// second and never sleeping longer than a minute at a time.
func NewBackoff(retries int) Backoff {
	return Backoff{Retries: max(retries, 0), Initial: time.Second, Max: time.Minute}
}

// TransientError marks a failure that may succeed when repeated, such as a
// connection reset or a 5xx response. After carries the server's
// Retry-After hint, if any.
type TransientError struct {
	Err   error
	After time.Duration
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err as a [TransientError] with the Retry-After hint
// from h, which may be nil.
func Transient(err error, h http.Header) error {
	return &TransientError{Err: err, After: RetryAfter(h)}
}

// IsTransient reports whether err or anything it wraps is a [TransientError].
func IsTransient(err error) bool {
	return errors.As(err, new(*TransientError))
}

// RetryAfter parses a Retry-After header given in seconds. HTTP dates are
// not used by GitHub and yield 0.
func RetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// Do calls fn until it succeeds, returns a non-transient error, or the
// retries are used up. The last error is returned; a cancelled ctx ends the
// wait early with ctx.Err().
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	delay := b.Initial
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || attempt >= b.Retries || !IsTransient(err) {
			return err
		}

		wait := delay
		var te *TransientError
		if errors.As(err, &te) && te.After > 0 {
			wait = te.After
		}
		if b.Max > 0 {
			wait = min(wait, b.Max)
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}
