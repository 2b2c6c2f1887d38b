// Package tutor is the AI English tutor: free chat about the unit being
// studied, grammar explanations and fresh example sentences. Without a
// model every call answers from the catalog or with a canned notice.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/logger"
)

// ErrEmptyMessage is returned for a blank chat message.
var ErrEmptyMessage = errors.New("empty message")

const (
	purposeChat    = "tutor-chat"
	purposeExplain = "grammar-explanation"
	purposeExample = "example-sentence"
)

// Service answers tutor requests. A nil provider is allowed.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// New creates a tutor service.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Available reports whether answers come from a model.
func (s *Service) Available() bool {
	return s.provider != nil
}

type replyOutput struct {
	Reply string `json:"reply"`
}

// Reply answers message given the earlier turns of the chat.
func (s *Service) Reply(ctx context.Context, lc Context, history []Turn, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}
	if s.provider == nil {
		return Reply{Text: unavailableText, Fallback: true}, nil
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range recentTurns(history, s.cfg.HistoryTurns) {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	var out replyOutput
	err := s.generate(llm.WithPurpose(ctx, purposeChat), llm.Request{
		System:      chatSystem(lc),
		Messages:    msgs,
		Schema:      ReplySchema,
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	if err == nil && strings.TrimSpace(out.Reply) == "" {
		err = errors.New("empty reply")
	}
	if err != nil {
		s.log.Warn("tutor reply failed", "error", err)
		return Reply{Text: failedText, Fallback: true}, nil
	}
	return Reply{Text: strings.TrimSpace(out.Reply)}, nil
}

// recentTurns keeps the last n turns and drops leading assistant turns so
// the conversation opens with the student.
func recentTurns(history []Turn, n int) []Turn {
	if n > 0 && len(history) > n {
		history = history[len(history)-n:]
	}
	for len(history) > 0 && history[0].Role != llm.RoleUser {
		history = history[1:]
	}
	return history
}

type explanationOutput struct {
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
	Tips        []string `json:"tips"`
}

// GrammarExplanation explains gp. It falls back to the catalog's own
// explanation and examples.
func (s *Service) GrammarExplanation(ctx context.Context, gp curriculum.GrammarPoint) Explanation {
	static := staticExplanation(gp)
	if s.provider == nil {
		return static
	}

	var out explanationOutput
	err := s.generate(llm.WithPurpose(ctx, purposeExplain), llm.Request{
		System:      explainSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildExplainMessage(gp)}},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.ExplainMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	if err == nil && strings.TrimSpace(out.Explanation) == "" {
		err = errors.New("empty explanation")
	}
	if err != nil {
		s.log.Warn("grammar explanation failed, using catalog text", "grammar_id", gp.ID, "error", err)
		return static
	}

	ex := Explanation{
		Title:       static.Title,
		Explanation: strings.TrimSpace(out.Explanation),
		Examples:    nonEmpty(out.Examples),
		Tips:        nonEmpty(out.Tips),
		Generated:   true,
	}
	if len(ex.Examples) == 0 {
		ex.Examples = static.Examples
	}
	if len(ex.Tips) == 0 {
		ex.Tips = static.Tips
	}
	return ex
}

type exampleOutput struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

// ExampleSentence writes a new sentence using w. The word's own example
// is the fallback.
func (s *Service) ExampleSentence(ctx context.Context, w curriculum.Word, d Difficulty) Example {
	static := staticExample(w)
	if s.provider == nil {
		return static
	}

	var out exampleOutput
	err := s.generate(llm.WithPurpose(ctx, purposeExample), llm.Request{
		System:      exampleSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildExampleMessage(w, d)}},
		Schema:      ExampleSchema,
		MaxTokens:   s.cfg.ExampleMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	sentence := strings.TrimSpace(out.Sentence)
	if err == nil && !strings.Contains(strings.ToLower(sentence), strings.ToLower(w.English)) {
		err = fmt.Errorf("sentence %q does not use %q", sentence, w.English)
	}
	if err != nil {
		s.log.Warn("example sentence failed, using stored example", "word_id", w.ID, "error", err)
		return static
	}
	return Example{Sentence: sentence, Translation: strings.TrimSpace(out.Translation), Generated: true}
}

func (s *Service) generate(ctx context.Context, req llm.Request, out any) error {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", llm.PurposeFrom(ctx), err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", llm.PurposeFrom(ctx), err)
	}
	return nil
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
