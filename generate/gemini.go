package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const geminiDefaultModel = "gemini-2.5-flash"

// GeminiProvider calls Google's Gemini API through the GenAI SDK.
type GeminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func NewGeminiProvider(ctx context.Context, c Config) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	model := c.Model
	if model == "" {
		model = geminiDefaultModel
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &GeminiProvider{client: client, model: model, maxTokens: int32(maxTokens)}, nil
}

func (p *GeminiProvider) Name() string { return ProviderGemini }

func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response content")
	}
	return text, nil
}
