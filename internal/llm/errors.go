package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a provider failure for retry and fallback decisions.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx answers.
	KindUnavailable ErrorKind = iota
	// KindRateLimited is a 429 answer.
	KindRateLimited
	// KindAuth is a rejected or missing credential. Never retried.
	KindAuth
	// KindInvalidOutput means the model answered with something that is not
	// the JSON the schema asks for.
	KindInvalidOutput
	// KindTruncated means generation stopped at the token limit.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindAuth:
		return "authentication failed"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "output truncated"
	default:
		return "unavailable"
	}
}

// Error is the single error type providers return.
type Error struct {
	Kind     ErrorKind
	Provider string
	// Status is the HTTP status when one was received.
	Status int
	// RetryAfter is the wait the provider asked for, if any.
	RetryAfter time.Duration
	// Content is the raw model output for KindInvalidOutput and KindTruncated.
	Content json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(", retry after %s", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// statusError maps an HTTP status from a provider SDK to an *Error.
func statusError(provider string, status int, retryAfter time.Duration, err error) *Error {
	e := &Error{Kind: KindUnavailable, Provider: provider, Status: status, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = retryAfter
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = KindAuth
	}
	return e
}

func invalidOutput(provider string, content json.RawMessage, err error) *Error {
	return &Error{Kind: KindInvalidOutput, Provider: provider, Content: content, Err: err}
}

// parseRetryAfter reads a Retry-After header value given in seconds.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := time.ParseDuration(v + "s"); err == nil && secs > 0 {
		return secs
	}
	return 0
}
