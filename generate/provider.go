package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config selects and configures an LLM provider.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
	Timeout   time.Duration
}

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	defaultMaxTokens = 1000
	defaultTimeout   = 60 * time.Second
)

// ConfigFromViper reads the llm.* keys.
func ConfigFromViper(cfg *viper.Viper) Config {
	c := Config{
		Provider:  strings.ToLower(cfg.GetString("llm.provider")),
		APIKey:    cfg.GetString("llm.apiKey"),
		Model:     cfg.GetString("llm.model"),
		MaxTokens: cfg.GetInt("llm.maxTokens"),
		BaseURL:   cfg.GetString("llm.baseURL"),
		Timeout:   cfg.GetDuration("llm.timeout"),
	}
	if c.Provider == "" {
		c.Provider = ProviderAnthropic
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// NewProvider builds the configured provider.
func NewProvider(ctx context.Context, c Config) (Provider, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("llm.apiKey must be configured for provider %q", c.Provider)
	}
	switch c.Provider {
	case ProviderAnthropic, "claude":
		return NewAnthropicProvider(c), nil
	case ProviderGemini, "google":
		p, err := NewGeminiProvider(ctx, c)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want anthropic or gemini)", c.Provider)
	}
}
