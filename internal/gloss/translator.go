// Package gloss fills in missing English glosses for lexicon entries using an
// LLM.
package gloss

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/jusunglee/khmerlex/internal/llm"
)

type Translator struct {
	llm llm.Client
}

// Gloss is one word of a model response.
type Gloss struct {
	Khmer   string `json:"khmer"`
	English string `json:"english"`
	POS     string `json:"pos,omitempty"`
}

func NewTranslator(client llm.Client) *Translator {
	return &Translator{llm: client}
}

const systemPrompt = `You are a Khmer-English lexicographer writing short dictionary glosses.

For each Khmer word, provide:
1. A concise English gloss (a few words, the most common sense first)
2. The part of speech: one of noun, verb, adj, adv, pron, prep, conj, part, num

Copy the Khmer word exactly as given. If you do not know a word, omit it.

Respond ONLY with a JSON array, no other text. Example:
[
  {"khmer": "ទឹក", "english": "water", "pos": "noun"},
  {"khmer": "ញ៉ាំ", "english": "to eat", "pos": "verb"}
]`

// TranslateWords asks the model for glosses of words. Results are trimmed and
// keyed back to the requested words; glosses for words that were not asked
// for, repeats, or glosses with an empty English field are dropped.
func (t *Translator) TranslateWords(ctx context.Context, words []string) ([]Gloss, error) {
	if len(words) == 0 {
		return nil, nil
	}

	requested := make(map[string]bool, len(words))
	var sb strings.Builder
	sb.WriteString("Gloss these Khmer words:\n")
	for _, w := range words {
		requested[w] = true
		sb.WriteString("- ")
		sb.WriteString(w)
		sb.WriteString("\n")
	}

	text, err := t.llm.Complete(ctx, systemPrompt, sb.String())
	if err != nil {
		return nil, err
	}

	var raw []Gloss
	if err := json.Unmarshal([]byte(llm.ExtractJSONArray(text)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse gloss response: %w (response: %s)", err, text)
	}

	glosses := make([]Gloss, 0, len(raw))
	for _, g := range raw {
		g.Khmer = strings.TrimSpace(g.Khmer)
		g.English = strings.TrimSpace(g.English)
		if !requested[g.Khmer] || g.English == "" {
			continue
		}
		requested[g.Khmer] = false
		if pos, ok := lexicon.NormalizePOS(g.POS); ok {
			g.POS = string(pos)
		} else {
			g.POS = ""
		}
		glosses = append(glosses, g)
	}
	return glosses, nil
}
