package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/aidu/english/internal/logger"
)

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
	log   *logger.Logger
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry retries rate limits, outages and network errors with capped
// exponential backoff. Invalid output is retried once since a second sample
// usually parses; auth failures and truncation are returned at once.
func WithRetry(p Provider, cfg RetryConfig, log *logger.Logger) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &retryProvider{inner: p, cfg: cfg, log: log, sleep: sleepCtx}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	invalidSeen := false
	for attempt := 1; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.cfg.MaxAttempts || !retryable(err, &invalidSeen) {
			return nil, err
		}
		wait := r.wait(attempt, err)
		r.log.Debug("retrying llm request",
			"purpose", PurposeFrom(ctx), "attempt", attempt, "wait", wait, "error", err)
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindAuth, KindTruncated:
		return false
	case KindInvalidOutput:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

// wait is InitialWait * Multiplier^(attempt-1), capped at MaxWait, with the
// upper half jittered. A provider-supplied Retry-After wins but is capped
// too.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var pe *Error
	if errors.As(err, &pe) && pe.RetryAfter > 0 {
		return min(pe.RetryAfter, r.cfg.MaxWait)
	}
	d := float64(r.cfg.InitialWait)
	for range attempt - 1 {
		d *= r.cfg.Multiplier
	}
	if r.cfg.MaxWait > 0 && d > float64(r.cfg.MaxWait) {
		d = float64(r.cfg.MaxWait)
	}
	half := d / 2
	return time.Duration(half + rand.Float64()*half)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
