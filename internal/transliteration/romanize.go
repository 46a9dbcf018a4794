package transliteration

import "strings"

// Resolve returns the series that governs the cluster's vowel and whether the
// cluster carries a vowel sign. Base consonants set the series in scan order;
// subscripts never do. A register sign (muusikatoan or triisap) overrides the
// consonant-derived series wherever it sits in the cluster.
func (c Cluster) Resolve() (series Series, hasExplicitVowel bool) {
	series = Series1
	var override Series
	for _, comp := range c {
		switch comp.Kind {
		case KindConsonant:
			series = comp.Char.Consonant.Series
		case KindVowel:
			hasExplicitVowel = true
		case KindSign:
			if r := comp.Char.Sign.Register; r != 0 {
				override = r
			}
		}
	}
	if override != 0 {
		series = override
	}
	return series, hasExplicitVowel
}

// Romanize renders one cluster. Consonant sounds come first in scan order, then
// exactly one vowel (the explicit one, or the inherent vowel of the resolved
// series), then whatever the signs append. The phonetic spelling is upper-cased.
func (c Cluster) Romanize() (romanized, phonetic string) {
	if len(c) == 0 {
		return "", ""
	}

	series, hasExplicitVowel := c.Resolve()
	vowel := inherentVowel.Form(series)

	var rom, phon strings.Builder
	var appended []string
	for _, comp := range c {
		switch comp.Kind {
		case KindConsonant, KindSubscript:
			initial := comp.Char.Consonant.Initial
			rom.WriteString(initial)
			phon.WriteString(phoneticOf(phoneticConsonants, initial))
		case KindVowel:
			if hasExplicitVowel {
				vowel = comp.Char.Vowel.Form(series)
			}
		case KindSign:
			if a := comp.Char.Sign.Append; a != "" {
				appended = append(appended, a)
			}
		}
	}

	rom.WriteString(vowel)
	phon.WriteString(phoneticOf(phoneticVowels, vowel))
	for _, a := range appended {
		rom.WriteString(a)
		phon.WriteString(a)
	}
	return rom.String(), strings.ToUpper(phon.String())
}

// romanizeClusters joins the non-empty cluster outputs with the separator.
// Romanized and phonetic parts are filtered independently.
func romanizeClusters(clusters []Cluster) (romanized, phonetic string) {
	romParts := make([]string, 0, len(clusters))
	phonParts := make([]string, 0, len(clusters))
	for _, cl := range clusters {
		rom, phon := cl.Romanize()
		if rom != "" {
			romParts = append(romParts, rom)
		}
		if phon != "" {
			phonParts = append(phonParts, phon)
		}
	}
	return strings.Join(romParts, separator), strings.Join(phonParts, separator)
}
