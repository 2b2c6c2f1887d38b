package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures the question-writing model.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter" or
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one question batch, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig drives WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// vendor ties a provider name to its config fields and environment
// variables. The order of vendors is the discovery order.
type vendor struct {
	name     string
	ownKey   string // AIDU_* key variable
	ownModel string
	stdKey   string // the vendor's own variable, used by DiscoverConfig
	key      func(*Config) *string
	model    func(*Config) *string
}

var vendors = []vendor{
	{
		name: "gemini", ownKey: "AIDU_GEMINI_API_KEY", ownModel: "AIDU_GEMINI_MODEL", stdKey: "GEMINI_API_KEY",
		key:   func(c *Config) *string { return &c.Gemini.APIKey },
		model: func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name: "openai", ownKey: "AIDU_OPENAI_API_KEY", ownModel: "AIDU_OPENAI_MODEL", stdKey: "OPENAI_API_KEY",
		key:   func(c *Config) *string { return &c.OpenAI.APIKey },
		model: func(c *Config) *string { return &c.OpenAI.Model },
	},
	{
		name: "anthropic", ownKey: "AIDU_ANTHROPIC_API_KEY", ownModel: "AIDU_ANTHROPIC_MODEL", stdKey: "ANTHROPIC_API_KEY",
		key:   func(c *Config) *string { return &c.Anthropic.APIKey },
		model: func(c *Config) *string { return &c.Anthropic.Model },
	},
	{
		name: "openrouter", ownKey: "AIDU_OPENROUTER_API_KEY", ownModel: "AIDU_OPENROUTER_MODEL", stdKey: "OPENROUTER_API_KEY",
		key:   func(c *Config) *string { return &c.OpenRouter.APIKey },
		model: func(c *Config) *string { return &c.OpenRouter.Model },
	},
}

func lookupVendor(name string) (vendor, bool) {
	for _, v := range vendors {
		if v.name == name {
			return v, true
		}
	}
	return vendor{}, false
}

// DefaultConfig picks the cheap, fast tier of every vendor. Question
// batches are short and latency shows on screen.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// ConfigFromEnv overlays AIDU_* variables on DefaultConfig. Unparseable
// durations and counts keep their defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "AIDU_LLM_PROVIDER")
	for _, v := range vendors {
		setFromEnv(v.key(&cfg), v.ownKey)
		setFromEnv(v.model(&cfg), v.ownModel)
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "AIDU_OPENAI_BASE_URL")

	if d, err := time.ParseDuration(os.Getenv("AIDU_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("AIDU_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig returns a Config for the first vendor whose own key
// variable (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.stdKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.name
			*v.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig applies the lookup NewProviderFromEnv uses: AIDU_*
// variables first, then the vendors' own key variables. fromEnv is false
// when the config came from discovery. The error is the AIDU_* validation
// failure, returned only when discovery also finds nothing.
func ResolveConfig() (cfg Config, fromEnv bool, err error) {
	cfg = ConfigFromEnv()
	verr := cfg.Validate()
	if verr == nil {
		return cfg, true, nil
	}
	if discovered, ok := DiscoverConfig(); ok {
		return discovered, false, nil
	}
	return Config{}, false, verr
}

// Model is the configured model name of the selected provider.
func (c Config) Model() string {
	if v, ok := lookupVendor(c.Provider); ok {
		return *v.model(&c)
	}
	return ""
}

// Configured reports whether Validate passes.
func (c Config) Configured() bool {
	return c.Validate() == nil
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	v, ok := lookupVendor(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if *v.key(&c) == "" {
		return fmt.Errorf("%s is required for the %s provider", v.ownKey, v.name)
	}
	return nil
}
