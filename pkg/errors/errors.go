// Package errors classifies github-social-graph failures.
//
// Every failure the user can act on carries a [Code]: bad flags or input
// files, GitHub refusing or throttling requests, missing tools. The CLI
// prints [UserMessage] and tests match on [Is]:
//
//	if errors.Is(err, errors.ErrCodeRateLimited) {
//	    // suggest a token
//	}
//
// Upstream errors are kept as the cause so errors.Is and errors.As from the
// standard library still see sentinel errors and *[RateLimitedError].
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Code is a machine-readable failure class.
type Code string

const (
	// Flags, input files and identifiers.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidUsername Code = "INVALID_USERNAME"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// GitHub API responses.
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeUnauthorized Code = "UNAUTHORIZED"
	ErrCodeRateLimited  Code = "RATE_LIMITED"
	ErrCodeNetwork      Code = "NETWORK_ERROR"

	// Rendering.
	ErrCodeUnsupported Code = "UNSUPPORTED" // an optional external tool is missing
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Error is a failure with a code, a message for the user and an optional
// cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error that keeps cause for errors.Is/As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// coded is implemented by error types that know their own code.
type coded interface {
	error
	Code() Code
}

// GetCode returns the code of the outermost classified error in err's
// chain, or "" if there is none.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coded:
			return e.Code()
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if c := GetCode(inner); c != "" {
					return c
				}
			}
			return ""
		default:
			return ""
		}
	}
	return ""
}

// Is reports whether err is classified as code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// UserMessage returns err without the code prefix, for printing.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// RateLimitedError reports an exhausted GitHub API quota.
type RateLimitedError struct {
	RetryAfter time.Duration // from Retry-After, zero if absent
	Reset      time.Time     // from X-RateLimit-Reset, zero if absent
}

func (e *RateLimitedError) Error() string {
	switch {
	case e.RetryAfter > 0:
		return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
	case !e.Reset.IsZero():
		return "rate limited: quota resets at " + e.Reset.Format(time.Kitchen)
	default:
		return "rate limited: quota exhausted"
	}
}

// Code implements the coded interface.
func (e *RateLimitedError) Code() Code { return ErrCodeRateLimited }

// Wait returns how long to wait from now until requests are accepted
// again, or 0 if unknown.
func (e *RateLimitedError) Wait(now time.Time) time.Duration {
	if e.RetryAfter > 0 {
		return e.RetryAfter
	}
	if !e.Reset.IsZero() && e.Reset.After(now) {
		return e.Reset.Sub(now)
	}
	return 0
}
