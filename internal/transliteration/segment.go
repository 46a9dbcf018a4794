package transliteration

// Kind is the role a character plays inside a cluster.
type Kind uint8

const (
	KindConsonant Kind = iota + 1
	KindSubscript
	KindVowel
	KindSign
)

// Component is one classified character placed in a cluster. A subscripted
// consonant keeps its consonant record but has KindSubscript; the coeng marker
// itself is stored as KindSign.
type Component struct {
	Char Character
	Kind Kind
}

// Cluster is one syllable-like unit of a word.
type Cluster []Component

func (c Cluster) hasVowelOrSign() bool {
	for _, comp := range c {
		if comp.Kind == KindVowel || comp.Kind == KindSign {
			return true
		}
	}
	return false
}

// Segment splits word into clusters. Characters outside the alphabet are
// skipped. A consonant opens a new cluster only once the current one holds a
// vowel or sign, so runs of bare consonants stay together in one cluster.
// Stored romanizations depend on that grouping; keep it.
func Segment(word string) []Cluster {
	chars := make([]Character, 0, len(word))
	for _, r := range word {
		if c, ok := Classify(r); ok {
			chars = append(chars, c)
		}
	}

	var (
		clusters  []Cluster
		current   Cluster
		lastClass = ClassOther
	)
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		switch c.Class {
		case ClassConsonant:
			if len(current) > 0 && lastClass != ClassSubscriptMarker && current.hasVowelOrSign() {
				clusters = append(clusters, current)
				current = nil
			}
			current = append(current, Component{Char: c, Kind: KindConsonant})
		case ClassSubscriptMarker:
			current = append(current, Component{Char: c, Kind: KindSign})
			if i+1 < len(chars) && chars[i+1].Class == ClassConsonant {
				i++
				c = chars[i]
				current = append(current, Component{Char: c, Kind: KindSubscript})
			}
		case ClassVowel:
			current = append(current, Component{Char: c, Kind: KindVowel})
		case ClassSign:
			current = append(current, Component{Char: c, Kind: KindSign})
		}
		lastClass = c.Class
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}
