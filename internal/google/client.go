package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jusunglee/khmerlex/internal/llm"
	"google.golang.org/genai"
)

// Model represents a Google AI model identifier
type Model string

const (
	ModelGemma3_27B   Model = "gemma-3-27b-it"
	ModelGemini2Flash Model = "gemini-2.0-flash"
	ModelGemini2_5Pro Model = "gemini-2.5-pro"
)

var DefaultModel Model = ModelGemini2Flash

// isGemma reports whether m is an open Gemma model. Gemma accepts neither a
// separate system instruction nor a JSON response mode.
func (m Model) isGemma() bool {
	return strings.HasPrefix(string(m), "gemma")
}

type Client struct {
	client *genai.Client
	model  Model
}

var _ llm.Client = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	return newClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newClient(ctx context.Context, cfg *genai.ClientConfig, model Model) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// config returns the generation settings for the model, folding the system
// prompt into the user prompt when the model cannot take it separately.
func (c *Client) config(system, prompt string) (*genai.GenerateContentConfig, string) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if c.model.isGemma() {
		return cfg, system + "\n\n" + prompt
	}
	cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	cfg.ResponseMIMEType = "application/json"
	return cfg, prompt
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	config, prompt := c.config(system, prompt)

	result, err := c.client.Models.GenerateContent(ctx, string(c.model),
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("google API call failed: %w", err)
	}

	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		return "", errors.New("response truncated by the token limit")
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty response from google")
	}

	return llm.StripMarkdownCodeBlocks(text), nil
}
