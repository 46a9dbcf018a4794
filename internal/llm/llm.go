// Package llm holds the provider-neutral completion interface used for gloss
// enrichment.
package llm

import (
	"context"
	"strings"
)

type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// StripMarkdownCodeBlocks removes ```...``` wrappers from LLM responses
func StripMarkdownCodeBlocks(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}

// ExtractJSONArray returns the outermost [...] span of text, or text unchanged
// when there is none. Models sometimes wrap the array in a sentence.
func ExtractJSONArray(text string) string {
	text = StripMarkdownCodeBlocks(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
