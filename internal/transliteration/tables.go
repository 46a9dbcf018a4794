package transliteration

// Series is one of the two Khmer consonant registers. The same vowel glyph is
// read differently depending on the series of the consonant it follows.
type Series uint8

const (
	Series1 Series = 1
	Series2 Series = 2
)

// Consonant is the fixed record for a Khmer consonant letter.
type Consonant struct {
	Initial string
	Final   string
	Series  Series
}

// Vowel holds the ALA-LC form of a dependent vowel for each series.
type Vowel struct {
	Series1 string
	Series2 string
}

// Form returns the vowel's romanized form for series s.
func (v Vowel) Form(s Series) string {
	if s == Series2 {
		return v.Series2
	}
	return v.Series1
}

// Sign is the fixed record for a diacritic. Register is zero unless the sign
// forces the cluster into a series.
type Sign struct {
	Append   string
	Register Series
}

const (
	subscriptMarker = '្' // coeng
	separator       = "-"
)

// Revised ALA-LC romanization of Khmer
var (
	consonants = map[rune]Consonant{
		'ក': {Initial: "k", Final: "k", Series: Series1},
		'ខ': {Initial: "kh", Final: "k", Series: Series1},
		'គ': {Initial: "k", Final: "k", Series: Series2},
		'ឃ': {Initial: "kh", Final: "k", Series: Series2},
		'ង': {Initial: "ng", Final: "ng", Series: Series2},
		'ច': {Initial: "ch", Final: "ch", Series: Series1},
		'ឆ': {Initial: "chh", Final: "ch", Series: Series1},
		'ជ': {Initial: "ch", Final: "ch", Series: Series2},
		'ឈ': {Initial: "chh", Final: "ch", Series: Series2},
		'ញ': {Initial: "ñ", Final: "nh", Series: Series2},
		'ដ': {Initial: "d", Final: "t", Series: Series1},
		'ឋ': {Initial: "th", Final: "t", Series: Series1},
		'ឌ': {Initial: "d", Final: "t", Series: Series2},
		'ឍ': {Initial: "th", Final: "t", Series: Series2},
		'ណ': {Initial: "n", Final: "n", Series: Series1},
		'ត': {Initial: "t", Final: "t", Series: Series1},
		'ថ': {Initial: "th", Final: "t", Series: Series1},
		'ទ': {Initial: "t", Final: "t", Series: Series2},
		'ធ': {Initial: "th", Final: "t", Series: Series2},
		'ន': {Initial: "n", Final: "n", Series: Series2},
		'ប': {Initial: "b", Final: "p", Series: Series1},
		'ផ': {Initial: "ph", Final: "p", Series: Series1},
		'ព': {Initial: "p", Final: "p", Series: Series2},
		'ភ': {Initial: "ph", Final: "p", Series: Series2},
		'ម': {Initial: "m", Final: "m", Series: Series2},
		'យ': {Initial: "y", Final: "y", Series: Series2},
		'រ': {Initial: "r", Final: "r", Series: Series2},
		'ល': {Initial: "l", Final: "l", Series: Series2},
		'វ': {Initial: "v", Final: "o", Series: Series2},
		'ស': {Initial: "s", Final: "s", Series: Series1},
		'ហ': {Initial: "h", Final: "h", Series: Series1},
		'ឡ': {Initial: "l", Final: "l", Series: Series1},
		'អ': {Initial: "'", Final: "", Series: Series1},
	}

	vowels = map[rune]Vowel{
		'ា': {Series1: "ā", Series2: "ā"},
		'ិ': {Series1: "ĕ", Series2: "ĭ"},
		'ី': {Series1: "ei", Series2: "ī"},
		'ឹ': {Series1: "œ̆", Series2: "œ̆"},
		'ឺ': {Series1: "œ", Series2: "œ"},
		'ុ': {Series1: "ŏ", Series2: "ŭ"},
		'ូ': {Series1: "o", Series2: "ū"},
		'ួ': {Series1: "uă", Series2: "uŏ"},
		'ើ': {Series1: "aeu", Series2: "eu"},
		'ឿ': {Series1: "œă", Series2: "œă"},
		'ៀ': {Series1: "iĕ", Series2: "iĕ"},
		'េ': {Series1: "é", Series2: "é"},
		'ែ': {Series1: "ê", Series2: "ê"},
		'ៃ': {Series1: "ai", Series2: "ey"},
		'ោ': {Series1: "au", Series2: "o"},
		'ៅ': {Series1: "au", Series2: "ŏu"},
	}

	// inherentVowel is read when a cluster carries no vowel sign.
	inherentVowel = Vowel{Series1: "â", Series2: "ô"}

	signs = map[rune]Sign{
		'ំ': {Append: "m"},       // nikahit
		'ះ': {Append: "h"},       // reahmuk
		'់': {},                  // bantoc
		'៉': {Register: Series1}, // muusikatoan
		'៊': {Register: Series2}, // triisap
	}
)

// Simplified English-friendly spellings keyed by ALA-LC form. Forms missing
// here are used as-is.
var (
	phoneticConsonants = map[string]string{
		"k": "k", "kh": "kh", "ng": "ng", "ch": "ch", "chh": "chh",
		"ñ": "ny", "d": "d", "th": "th", "t": "t", "n": "n",
		"b": "b", "ph": "ph", "p": "p", "m": "m", "y": "y",
		"r": "r", "l": "l", "v": "v", "s": "s", "h": "h", "'": "",
	}

	phoneticVowels = map[string]string{
		"â": "a", "ô": "o", "ā": "ah", "ĕ": "e", "ĭ": "i",
		"ei": "ay", "ī": "ee", "œ̆": "eu", "œ": "eu",
		"ŏ": "o", "ŭ": "u", "o": "oh", "ū": "oo",
		"uă": "ua", "uŏ": "uo", "aeu": "eu", "eu": "eu",
		"œă": "eua", "iĕ": "ia", "é": "ay", "ê": "eh",
		"ai": "ai", "ey": "ey", "au": "ao", "ŏu": "ou",
	}
)

func phoneticOf(table map[string]string, form string) string {
	if p, ok := table[form]; ok {
		return p
	}
	return form
}
