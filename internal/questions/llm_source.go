package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/logger"
	"github.com/aidu/english/internal/quiz"
)

// Config controls the behavior of the LLMSource.
type Config struct {
	// MaxTokens is the token budget for one batch response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// Validators run on every generated question in order. A question
	// failing any of them is dropped.
	Validators []Validator
}

// DefaultConfig returns the standard validator chain and budgets.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		Validators:  []Validator{&StructuralValidator{}},
	}
}

// LLMSource generates questions with a language model.
type LLMSource struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// NewLLMSource returns a Source backed by provider.
func NewLLMSource(provider llm.Provider, cfg Config, log *logger.Logger) *LLMSource {
	if log == nil {
		log = logger.Nop()
	}
	return &LLMSource{provider: provider, config: cfg, log: log}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func (s *LLMSource) Questions(ctx context.Context, req Request) ([]quiz.Question, error) {
	if err := req.check(); err != nil {
		return nil, err
	}
	ctx = llm.WithCall(ctx, llm.CallInfo{Purpose: string(req.Activity) + "-questions", SetID: req.SetID})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      questionSchema(req.Activity),
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	validators := append([]Validator{&TypeValidator{Allowed: allowedTypes[req.Activity]}}, s.config.Validators...)
	passage := ""
	if req.Reading != nil {
		passage = req.Reading.Passage
	}

	var out []quiz.Question
	for i, r := range raw.Questions {
		q := quiz.Question{
			Type:        quiz.QuestionType(r.Type),
			Prompt:      strings.TrimSpace(r.Question),
			Passage:     passage,
			Options:     trimAll(r.Options),
			Answer:      quiz.SingleAnswer(strings.TrimSpace(r.CorrectAnswer)),
			Explanation: r.Explanation,
		}
		if verr := validate(&q, validators); verr != nil {
			s.log.Debug("dropping generated question", "set_id", req.SetID, "index", i, "reason", verr.Error())
			continue
		}
		out = append(out, q)
		if len(out) == req.count() {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", req.SetID, ErrNoValidQuestions)
	}

	renumber(req.SetID, out)
	return out, nil
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
