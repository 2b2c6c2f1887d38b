package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anthropicServer(t *testing.T, h http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &AnthropicProvider{
		client: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(srv.URL),
			option.WithMaxRetries(0),
		),
		model: "claude-haiku-4-5",
	}
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-haiku-4-5",
			"stop_reason": stop,
			"content":     []map[string]any{{"type": "text", "text": text}},
			"usage":       map[string]any{"input_tokens": 210, "output_tokens": 95},
		})
	}
}

func anthropicFailure(status int, header map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range header {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "error", "message": http.StatusText(status)},
		})
	}
}

func TestAnthropic_StructuredReply(t *testing.T) {
	p := anthropicServer(t, anthropicReply("```json\n"+`{"questions":[{"type":"eng-to-kor"}]}`+"\n```", "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:   "당신은 중학생을 가르치는 영어 선생님입니다.",
		Messages: []Message{{Role: RoleUser, Content: "단어 문제 1개"}},
		Schema:   batchSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[{"type":"eng-to-kor"}]}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 210, OutputTokens: 95, TotalTokens: 305}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5", resp.Model)
}

func TestAnthropic_TruncatedReplyIsNotInvalid(t *testing.T) {
	p := anthropicServer(t, anthropicReply(`{"questions":[{"type":"eng`, "max_tokens"))

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}},
		Schema:   batchSchema(),
	})
	assert.True(t, IsKind(err, KindTruncated), "got %v", err)
}

func TestAnthropic_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		header map[string]string
		kind   ErrorKind
		after  time.Duration
	}{
		{"rate limit", http.StatusTooManyRequests, map[string]string{"Retry-After": "3"}, KindRateLimited, 3 * time.Second},
		{"overloaded", http.StatusServiceUnavailable, nil, KindUnavailable, 0},
		{"bad key", http.StatusUnauthorized, nil, KindAuth, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicServer(t, anthropicFailure(tt.status, tt.header))
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})

			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.status, pe.Status)
			assert.Equal(t, "anthropic", pe.Provider)
			assert.Equal(t, tt.after, pe.RetryAfter)
		})
	}
}

func TestAnthropic_Aliases(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5", modelAlias("claude-haiku", anthropicAliases))
	assert.Equal(t, "claude-opus-4-1", modelAlias("claude-opus-4-1", anthropicAliases))

	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-sonnet"})
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", p.ModelID())
}
