package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openRouterURL   = "https://openrouter.ai/api/v1"
	openRouterTitle = "AIDU English"
	openRouterSite  = "https://github.com/aidu/english"
)

// NewOpenRouterProvider returns an OpenAI-compatible provider aimed at
// OpenRouter. Requests carry the attribution headers OpenRouter uses for
// its app listing.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: missing API key")
	}
	conf := openai.DefaultConfig(cfg.APIKey)
	conf.BaseURL = openRouterURL
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	conf.HTTPClient = &http.Client{Transport: attribution{base: http.DefaultTransport}}
	return newOpenAICompatible("openrouter", conf, cfg.Model), nil
}

type attribution struct {
	base http.RoundTripper
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("HTTP-Referer", openRouterSite)
	r.Header.Set("X-Title", openRouterTitle)
	return a.base.RoundTrip(r)
}
