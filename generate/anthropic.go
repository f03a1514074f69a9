package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicBaseURL      = "https://api.anthropic.com/v1"
	anthropicDefaultModel = "claude-3-5-sonnet-20241022"
	anthropicVersion      = "2023-06-01"
)

// AnthropicProvider calls the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func NewAnthropicProvider(c Config) *AnthropicProvider {
	p := &AnthropicProvider{
		apiKey:    c.APIKey,
		baseURL:   strings.TrimRight(c.BaseURL, "/"),
		model:     c.Model,
		maxTokens: c.MaxTokens,
		client:    &http.Client{Timeout: c.Timeout},
	}
	if p.baseURL == "" {
		p.baseURL = anthropicBaseURL
	}
	if p.model == "" {
		p.model = anthropicDefaultModel
	}
	if p.maxTokens <= 0 {
		p.maxTokens = defaultMaxTokens
	}
	if p.client.Timeout <= 0 {
		p.client.Timeout = defaultTimeout
	}
	return p
}

func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

// Complete sends prompt as a single user message. The first content block
// must be text.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response content")
	}
	if apiResp.Content[0].Type != "text" {
		return "", fmt.Errorf("unexpected content block type %q", apiResp.Content[0].Type)
	}
	return apiResp.Content[0].Text, nil
}
