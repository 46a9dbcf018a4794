package transliteration

import "unicode"

// Class is the orthographic category of a Khmer code point.
type Class uint8

const (
	ClassOther Class = iota
	ClassConsonant
	ClassVowel
	ClassSign
	ClassSubscriptMarker
)

func (c Class) String() string {
	switch c {
	case ClassConsonant:
		return "consonant"
	case ClassVowel:
		return "vowel"
	case ClassSign:
		return "sign"
	case ClassSubscriptMarker:
		return "subscript-marker"
	default:
		return "other"
	}
}

// Character is a classified code point together with its table record. Only
// the record matching Class is populated.
type Character struct {
	Rune      rune
	Class     Class
	Consonant Consonant
	Vowel     Vowel
	Sign      Sign
}

// Classify looks r up in the fixed tables. ok is false for code points outside
// the alphabet (spaces, punctuation, digits, independent vowels), which callers
// pass through untouched.
func Classify(r rune) (c Character, ok bool) {
	c.Rune = r
	if r == subscriptMarker {
		c.Class = ClassSubscriptMarker
		return c, true
	}
	if rec, found := consonants[r]; found {
		c.Class = ClassConsonant
		c.Consonant = rec
		return c, true
	}
	if rec, found := vowels[r]; found {
		c.Class = ClassVowel
		c.Vowel = rec
		return c, true
	}
	if rec, found := signs[r]; found {
		c.Class = ClassSign
		c.Sign = rec
		return c, true
	}
	return Character{Rune: r}, false
}

// inAlphabet reports whether r takes part in segmentation.
func inAlphabet(r rune) bool {
	_, ok := Classify(r)
	return ok
}

// inKhmerRun reports whether r belongs to a run handed to Segment: a letter
// from the tables, or a Khmer combining mark the tables do not list (bantoc
// U+17D0, robat U+17CC, toandakhiat U+17CD ...). Segment drops the marks, so
// they never split a word or reach the Latin output.
func inKhmerRun(r rune) bool {
	if inAlphabet(r) {
		return true
	}
	return (r >= 0x17B4 && r <= 0x17D3 || r == 0x17DD) && unicode.In(r, unicode.Mn, unicode.Mc)
}
