// Package llm talks to the hosted models that write quiz questions. Every
// vendor sits behind Provider and answers with schema-checked JSON.
package llm

import (
	"context"
	"encoding/json"
)

// DefaultMaxTokens is used when a Request leaves MaxTokens at zero. A batch
// of ten questions with explanations fits comfortably.
const DefaultMaxTokens = 2048

// Provider generates one structured response per call.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	System   string
	Messages []Message
	// Schema, when set, asks for JSON matching it. Content is checked before
	// it is returned.
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

func (r Request) maxTokens() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return DefaultMaxTokens
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. Name doubles as the vendor-side schema or
// tool name, so keep it kebab-case ("vocabulary-questions").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's answer.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func newUsage(in, out int) Usage {
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}

// finish turns raw model text into a Response. With a schema the text is
// cleaned and validated; a truncated answer that fails validation is
// reported as KindTruncated so it is not retried.
func finish(provider string, req Request, text string, usage Usage, model string, stop StopReason) (*Response, error) {
	content := json.RawMessage(text)
	if req.Schema != nil {
		cleaned, err := validateResponse(provider, req.Schema, content)
		if err != nil {
			if stop == StopMaxTokens {
				return nil, &Error{Kind: KindTruncated, Provider: provider, Content: content, Err: err}
			}
			return nil, err
		}
		content = cleaned
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
