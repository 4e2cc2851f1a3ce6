// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inference

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/memory-insights/internal/httputil"
	"github.com/pdiddy/memory-insights/pkg/types"
)

// Generator produces a model continuation for a prompt. The provider owns
// tokenization, truncation, sampling, and detokenization; callers see text in
// and text out. Implementations must be safe for sequential reuse across
// models addressed by identifier.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Client is a Generator backed by an OpenAI-compatible completions endpoint.
type Client struct {
	api *openai.Client
	cfg types.InferenceConfig
}

// NewClient builds a Client from the inference configuration. Zero-valued
// sampling settings fall back to the defaults the benchmark was designed
// around (200 new tokens, temperature 0.7, 512-token prompt window).
func NewClient(cfg types.InferenceConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080/v1"
	}
	if cfg.MaxNewTokens <= 0 {
		cfg.MaxNewTokens = 200
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxPromptTokens <= 0 {
		cfg.MaxPromptTokens = 512
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	apiCfg.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &httputil.RetryTransport{
			MaxRetries: cfg.MaxRetries,
			UserAgent:  cfg.UserAgent,
		},
	}

	return &Client{
		api: openai.NewClientWithConfig(apiCfg),
		cfg: cfg,
	}
}

// Generate requests a sampled continuation of prompt from the named model.
// Generation stops at the model's end-of-sequence marker or after the
// configured token budget. The returned text is the answer only, with the
// prompt and response cue stripped.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.api.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       model,
		Prompt:      truncatePrompt(prompt, c.cfg.MaxPromptTokens),
		MaxTokens:   c.cfg.MaxNewTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion request to %s: %w", model, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion request to %s: empty choices", model)
	}

	return ExtractResponse(resp.Choices[0].Text), nil
}

// charsPerToken is a conservative estimate for clamp purposes; the server's
// tokenizer performs the exact truncation.
const charsPerToken = 4

// truncatePrompt clamps oversized prompts to the configured token budget
// before they reach the wire.
func truncatePrompt(prompt string, maxTokens int) string {
	limit := maxTokens * charsPerToken
	if limit <= 0 || len(prompt) <= limit {
		return prompt
	}
	return prompt[:limit]
}
