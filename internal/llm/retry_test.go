package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(p Provider) (*retryProvider, *[]time.Duration) {
	r := WithRetry(p, RetryConfig{MaxAttempts: 3, InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2}, nil).(*retryProvider)
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func down() MockResponse {
	return MockResponse{Err: &Error{Kind: KindUnavailable, Provider: "gemini", Status: 503}}
}

func answered() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"questions":[]}`)}
}

func TestRetry_RecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(down(), answered())
	r, waits := fastRetry(mock)

	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[]}`, string(resp.Content))
	assert.Equal(t, 2, mock.CallCount())
	require.Len(t, *waits, 1)
	assert.GreaterOrEqual(t, (*waits)[0], 50*time.Millisecond)
	assert.LessOrEqual(t, (*waits)[0], 100*time.Millisecond)
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(down(), down(), down(), answered())
	r, waits := fastRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	assert.True(t, IsKind(err, KindUnavailable))
	assert.Equal(t, 3, mock.CallCount())
	assert.Len(t, *waits, 2)
}

func TestRetry_NotRetried(t *testing.T) {
	for _, kind := range []ErrorKind{KindAuth, KindTruncated} {
		mock := NewMockProvider(MockResponse{Err: &Error{Kind: kind}}, answered())
		r, _ := fastRetry(mock)
		_, err := r.Generate(context.Background(), Request{})
		assert.True(t, IsKind(err, kind))
		assert.Equal(t, 1, mock.CallCount(), kind.String())
	}
}

func TestRetry_InvalidOutputRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: invalidOutput("openai", json.RawMessage(`{}`), errors.New("missing questions"))}
	mock := NewMockProvider(bad, bad, answered())
	r, _ := fastRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	assert.True(t, IsKind(err, KindInvalidOutput))
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_PlainErrorsAreTransient(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("connection reset")}, answered())
	r, _ := fastRetry(mock)
	_, err := r.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestRetry_RetryAfterIsCapped(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: 300 * time.Millisecond}},
		MockResponse{Err: &Error{Kind: KindRateLimited, RetryAfter: time.Minute}},
		answered(),
	)
	r, waits := fastRetry(mock)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{300 * time.Millisecond, time.Second}, *waits)
}

func TestRetry_CanceledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := NewMockProvider(down(), answered())
	r := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2}, nil)

	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, mock.CallCount())
}

func TestRetry_BackoffGrows(t *testing.T) {
	r, _ := fastRetry(NewMockProvider())
	err := &Error{Kind: KindUnavailable}
	for attempt, ceiling := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, 800 * time.Millisecond, time.Second, time.Second} {
		d := r.wait(attempt+1, err)
		assert.GreaterOrEqual(t, d, ceiling/2)
		assert.LessOrEqual(t, d, ceiling)
	}
	assert.Equal(t, "mock", r.ModelID())
}
