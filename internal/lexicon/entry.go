// Package lexicon holds dictionary entries and the read-only index used for
// exact, phonetic and gloss lookups.
package lexicon

import (
	"errors"
	"strings"
)

// ErrMissingScript is returned by Validate for records with no Khmer form.
var ErrMissingScript = errors.New("lexicon: entry has no script form")

// Entry is one dictionary record. Optional fields use their zero value for
// "absent" and are omitted when serialized. A zero Frequency means unknown.
type Entry struct {
	Script    string       `json:"khmer"`
	Gloss     string       `json:"english,omitempty"`
	POS       PartOfSpeech `json:"pos,omitempty"`
	Romanized string       `json:"romanized,omitempty"`
	Phonetic  string       `json:"phonetic,omitempty"`
	Frequency int          `json:"frequency,omitempty"`

	// DefinitionKM is the monolingual Khmer definition. It is kept for storage
	// but never written to tier files.
	DefinitionKM string `json:"-"`
}

// Validate trims the script form and rejects entries without one.
func (e *Entry) Validate() error {
	e.Script = strings.TrimSpace(e.Script)
	if e.Script == "" {
		return ErrMissingScript
	}
	return nil
}

// HasGloss reports whether the entry has an English gloss.
func (e Entry) HasGloss() bool {
	return strings.TrimSpace(e.Gloss) != ""
}

// PartOfSpeech is the normalized grammatical category of an entry.
type PartOfSpeech string

const (
	POSNoun PartOfSpeech = "noun"
	POSVerb PartOfSpeech = "verb"
	POSAdj  PartOfSpeech = "adj"
	POSAdv  PartOfSpeech = "adv"
	POSPron PartOfSpeech = "pron"
	POSPrep PartOfSpeech = "prep"
	POSConj PartOfSpeech = "conj"
	POSPart PartOfSpeech = "part"
	POSNum  PartOfSpeech = "num"
)

// posAliases maps source tags to the normalized set: Khmer dictionary
// abbreviations, our own tags, and upper-case treebank tags.
var posAliases = map[string]PartOfSpeech{
	"ន.":          POSNoun,
	"កិ.":         POSVerb,
	"គុ.":         POSAdj,
	"គុ.កិ.":      POSAdj,
	"គុ., គុ.កិ.": POSAdj,
	"កិ., គុ.កិ.": POSVerb,
	"គុ., ន.":     POSNoun,
	"ឧ.":          POSNoun, // exclamation
	"ប.":          POSAdv,
	"ឈ.":          POSConj,
	"និ.":         POSPrep,
	"កិ.វិ.":      POSAdv,
	"សព្ទ.":       POSNoun,
	"noun":        POSNoun,
	"verb":        POSVerb,
	"adj":         POSAdj,
	"adv":         POSAdv,
	"pron":        POSPron,
	"prep":        POSPrep,
	"conj":        POSConj,
	"part":        POSPart,
	"num":         POSNum,
	"NOUN":        POSNoun,
	"VERB":        POSVerb,
	"ADJ":         POSAdj,
	"ADV":         POSAdv,
	"PRON":        POSPron,
	"CLAS":        POSNoun, // classifier
	"PART":        POSPart,
	"NUM":         POSNum,
	"CONJ":        POSConj,
	"DET":         POSAdj,
}

// NormalizePOS maps a raw source tag to a PartOfSpeech. ok is false for empty
// or unknown tags.
func NormalizePOS(raw string) (pos PartOfSpeech, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	pos, ok = posAliases[raw]
	return pos, ok
}

// Valid reports whether p is one of the normalized categories.
func (p PartOfSpeech) Valid() bool {
	switch p {
	case POSNoun, POSVerb, POSAdj, POSAdv, POSPron, POSPrep, POSConj, POSPart, POSNum:
		return true
	}
	return false
}
