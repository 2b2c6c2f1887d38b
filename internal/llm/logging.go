package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aidu/english/internal/logger"
	"github.com/aidu/english/internal/store"
)

// EventRecorder persists LLM request events. store.EventRepo implements it.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, e store.LLMRequest) error
}

// LoggingProvider is a decorator that logs every LLM request and records
// it as an event.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      *logger.Logger
	events   EventRecorder
}

// WithLogging wraps a Provider with logging. Either log or events may be
// nil.
func WithLogging(p Provider, providerName string, log *logger.Logger, events EventRecorder) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, provider: providerName, log: log, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	call := CallFrom(ctx)
	purpose := call.Purpose

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	ev := store.LLMRequest{
		CreatedAt:   start,
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.ResponseBody = string(resp.Content)
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warn("llm request failed",
			"provider", ev.Provider, "model", ev.Model, "purpose", purpose,
			"set_id", call.SetID, "latency_ms", latencyMs, "error", err)
	} else {
		l.log.Debug("llm request",
			"provider", ev.Provider, "model", ev.Model, "purpose", purpose,
			"set_id", call.SetID, "latency_ms", latencyMs, "input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
	}

	// Recording is best effort; the request result stands either way.
	if l.events != nil {
		if recErr := l.events.AppendLLMRequest(ctx, ev); recErr != nil {
			l.log.Warn("failed to record llm request event", "error", recErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
