package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jusunglee/khmerlex/internal/llm"
)

// Re-export Model type and constants for external use
type Model = anthropic.Model

const (
	ModelClaudeSonnet4_5 Model = anthropic.ModelClaudeSonnet4_5_20250929
	ModelClaudeHaiku4_5  Model = anthropic.ModelClaudeHaiku4_5_20251001
	ModelClaudeOpus4_5   Model = anthropic.ModelClaudeOpus4_5_20251101
)

// Glossing is short-form output; the small model is enough.
var DefaultModel Model = ModelClaudeHaiku4_5

// A gloss batch of a few dozen words fits comfortably.
const maxTokens = 4096

// Client completes prompts with the Messages API. Output is sampled at
// temperature 0 so repeated enrichment runs agree with each other.
type Client struct {
	client anthropic.Client
	model  Model
}

var _ llm.Client = (*Client)(nil)

// NewClient builds a client for model, or DefaultModel when model is empty.
// Extra request options are appended after the API key, e.g. a base URL.
func NewClient(apiKey string, model Model, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}
	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(3)}, opts...)
	return &Client{
		client: anthropic.NewClient(reqOpts...),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	// A truncated JSON array is useless to the caller.
	if message.StopReason == anthropic.StopReasonMaxTokens {
		return "", fmt.Errorf("response truncated at %d tokens", maxTokens)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(textBlock.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response (stop reason %q)", message.StopReason)
	}

	return llm.StripMarkdownCodeBlocks(sb.String()), nil
}
