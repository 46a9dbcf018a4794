// Package vocabulary is the hand-curated seed lexicon used when no tier files
// exist yet. Frequencies are on a 1-100 scale.
package vocabulary

import "github.com/jusunglee/khmerlex/internal/lexicon"

// Core returns the everyday vocabulary: greetings, pronouns, numbers and the
// most common verbs, nouns and adjectives.
func Core() []lexicon.Entry {
	return clone(core)
}

// Extended returns the less frequent seed words.
func Extended() []lexicon.Entry {
	return clone(extended)
}

// All returns Core followed by Extended.
func All() []lexicon.Entry {
	return append(Core(), extended...)
}

func clone(entries []lexicon.Entry) []lexicon.Entry {
	out := make([]lexicon.Entry, len(entries))
	copy(out, entries)
	return out
}

var core = []lexicon.Entry{
	{Script: "សួស្តី", Gloss: "hello", POS: lexicon.POSNoun, Frequency: 100},
	{Script: "អរគុណ", Gloss: "thank you", POS: lexicon.POSNoun, Frequency: 100},
	{Script: "សូម", Gloss: "please", POS: lexicon.POSPart, Frequency: 95},
	{Script: "សូមទោស", Gloss: "sorry/excuse me", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "បាទ", Gloss: "yes (male)", POS: lexicon.POSPart, Frequency: 100},
	{Script: "ចាស", Gloss: "yes (female)", POS: lexicon.POSPart, Frequency: 100},
	{Script: "ទេ", Gloss: "no/not", POS: lexicon.POSPart, Frequency: 100},
	{Script: "មិន", Gloss: "not", POS: lexicon.POSAdv, Frequency: 95},
	{Script: "ខ្ញុំ", Gloss: "I/me", POS: lexicon.POSPron, Frequency: 100},
	{Script: "អ្នក", Gloss: "you", POS: lexicon.POSPron, Frequency: 100},
	{Script: "គាត់", Gloss: "he/she/they", POS: lexicon.POSPron, Frequency: 95},
	{Script: "យើង", Gloss: "we", POS: lexicon.POSPron, Frequency: 90},
	{Script: "គេ", Gloss: "they/people", POS: lexicon.POSPron, Frequency: 85},
	{Script: "នេះ", Gloss: "this", POS: lexicon.POSPron, Frequency: 95},
	{Script: "នោះ", Gloss: "that", POS: lexicon.POSPron, Frequency: 95},
	{Script: "អី", Gloss: "what", POS: lexicon.POSPron, Frequency: 90},
	{Script: "អ្វី", Gloss: "what (formal)", POS: lexicon.POSPron, Frequency: 90},
	{Script: "ណា", Gloss: "where/which", POS: lexicon.POSPron, Frequency: 90},
	{Script: "នរណា", Gloss: "who", POS: lexicon.POSPron, Frequency: 85},
	{Script: "ទៅ", Gloss: "go", POS: lexicon.POSVerb, Frequency: 100},
	{Script: "មក", Gloss: "come", POS: lexicon.POSVerb, Frequency: 100},
	{Script: "ញ៉ាំ", Gloss: "eat", POS: lexicon.POSVerb, Frequency: 95},
	{Script: "ផឹក", Gloss: "drink", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "ដឹង", Gloss: "know", POS: lexicon.POSVerb, Frequency: 95},
	{Script: "ចង់", Gloss: "want", POS: lexicon.POSVerb, Frequency: 95},
	{Script: "មាន", Gloss: "have/there is", POS: lexicon.POSVerb, Frequency: 100},
	{Script: "ធ្វើ", Gloss: "do/make", POS: lexicon.POSVerb, Frequency: 95},
	{Script: "និយាយ", Gloss: "speak/say", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "មើល", Gloss: "look/watch", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "ស្តាប់", Gloss: "listen", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "អាន", Gloss: "read", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "សរសេរ", Gloss: "write", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ស្រឡាញ់", Gloss: "love", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "ចូលចិត្ត", Gloss: "like", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "ជឿ", Gloss: "believe", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "គិត", Gloss: "think", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ដេក", Gloss: "sleep", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ក្រោក", Gloss: "wake up/get up", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "រត់", Gloss: "run", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ដើរ", Gloss: "walk", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ជិះ", Gloss: "ride", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ឈប់", Gloss: "stop", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ចាំ", Gloss: "wait/remember", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ភ្លេច", Gloss: "forget", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ទិញ", Gloss: "buy", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "លក់", Gloss: "sell", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ផ្តល់", Gloss: "give", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "យក", Gloss: "take", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ដាក់", Gloss: "put", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "មួយ", Gloss: "one", POS: lexicon.POSNum, Frequency: 100},
	{Script: "ពីរ", Gloss: "two", POS: lexicon.POSNum, Frequency: 100},
	{Script: "បី", Gloss: "three", POS: lexicon.POSNum, Frequency: 100},
	{Script: "បួន", Gloss: "four", POS: lexicon.POSNum, Frequency: 95},
	{Script: "ប្រាំ", Gloss: "five", POS: lexicon.POSNum, Frequency: 95},
	{Script: "ប្រាំមួយ", Gloss: "six", POS: lexicon.POSNum, Frequency: 90},
	{Script: "ប្រាំពីរ", Gloss: "seven", POS: lexicon.POSNum, Frequency: 90},
	{Script: "ប្រាំបី", Gloss: "eight", POS: lexicon.POSNum, Frequency: 90},
	{Script: "ប្រាំបួន", Gloss: "nine", POS: lexicon.POSNum, Frequency: 90},
	{Script: "ដប់", Gloss: "ten", POS: lexicon.POSNum, Frequency: 95},
	{Script: "រយ", Gloss: "hundred", POS: lexicon.POSNum, Frequency: 85},
	{Script: "ពាន់", Gloss: "thousand", POS: lexicon.POSNum, Frequency: 80},
	{Script: "ថ្ងៃ", Gloss: "day", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "យប់", Gloss: "night", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "ព្រឹក", Gloss: "morning", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "ល្ងាច", Gloss: "evening", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ម៉ោង", Gloss: "hour/time", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "នាទី", Gloss: "minute", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ឥឡូវ", Gloss: "now", POS: lexicon.POSAdv, Frequency: 90},
	{Script: "ម្សិលមិញ", Gloss: "yesterday", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ថ្ងៃនេះ", Gloss: "today", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "ថ្ងៃស្អែក", Gloss: "tomorrow", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ផ្ទះ", Gloss: "house/home", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "សាលា", Gloss: "school", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ផ្សារ", Gloss: "market", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "មន្ទីរពេទ្យ", Gloss: "hospital", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "វត្ត", Gloss: "temple/pagoda", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ភូមិ", Gloss: "village", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ទីក្រុង", Gloss: "city", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ប្រទេស", Gloss: "country", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "កម្ពុជា", Gloss: "Cambodia", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "ឆ្វេង", Gloss: "left", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ស្តាំ", Gloss: "right", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "មុខ", Gloss: "front/face", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ក្រោយ", Gloss: "behind/after", POS: lexicon.POSPrep, Frequency: 85},
	{Script: "លើ", Gloss: "on/above", POS: lexicon.POSPrep, Frequency: 85},
	{Script: "ក្រោម", Gloss: "under/below", POS: lexicon.POSPrep, Frequency: 80},
	{Script: "ក្នុង", Gloss: "in/inside", POS: lexicon.POSPrep, Frequency: 90},
	{Script: "ក្រៅ", Gloss: "outside", POS: lexicon.POSPrep, Frequency: 80},
	{Script: "បាយ", Gloss: "rice (cooked)", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "ទឹក", Gloss: "water", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "សាច់", Gloss: "meat", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ត្រី", Gloss: "fish", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "បន្លែ", Gloss: "vegetables", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ផ្លែឈើ", Gloss: "fruit", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "កាហ្វេ", Gloss: "coffee", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "តែ", Gloss: "tea", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ស្រា", Gloss: "alcohol/wine", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "មនុស្ស", Gloss: "person/people", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "ម៉ែ", Gloss: "mother", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "ប៉ា", Gloss: "father", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "បង", Gloss: "older sibling", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "អូន", Gloss: "younger sibling", POS: lexicon.POSNoun, Frequency: 95},
	{Script: "កូន", Gloss: "child", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "ប្រពន្ធ", Gloss: "wife", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ប្តី", Gloss: "husband", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "មិត្ត", Gloss: "friend", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ល្អ", Gloss: "good", POS: lexicon.POSAdj, Frequency: 95},
	{Script: "អាក្រក់", Gloss: "bad", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ធំ", Gloss: "big", POS: lexicon.POSAdj, Frequency: 90},
	{Script: "តូច", Gloss: "small", POS: lexicon.POSAdj, Frequency: 90},
	{Script: "ច្រើន", Gloss: "many/much", POS: lexicon.POSAdj, Frequency: 90},
	{Script: "តិច", Gloss: "few/little", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ថ្មី", Gloss: "new", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ចាស់", Gloss: "old", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ក្តៅ", Gloss: "hot", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ត្រជាក់", Gloss: "cold", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ឆ្ងាញ់", Gloss: "delicious", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ស្អាត", Gloss: "beautiful/clean", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "លឿន", Gloss: "fast", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "យឺត", Gloss: "slow", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "ងាយ", Gloss: "easy", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ពិបាក", Gloss: "difficult", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ថ្លៃ", Gloss: "expensive", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ថោក", Gloss: "cheap", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ហេតុអ្វី", Gloss: "why", POS: lexicon.POSAdv, Frequency: 85},
	{Script: "យ៉ាងម៉េច", Gloss: "how", POS: lexicon.POSAdv, Frequency: 85},
	{Script: "ប៉ុន្មាន", Gloss: "how many/much", POS: lexicon.POSAdv, Frequency: 90},
	{Script: "ពេលណា", Gloss: "when", POS: lexicon.POSAdv, Frequency: 85},
	{Script: "សុខសប្បាយ", Gloss: "fine/well", POS: lexicon.POSAdj, Frequency: 90},
	{Script: "អត់ទេ", Gloss: "no/nothing", POS: lexicon.POSPart, Frequency: 90},
	{Script: "មែន", Gloss: "right/true", POS: lexicon.POSAdj, Frequency: 90},
	{Script: "បាន", Gloss: "can/got/already", POS: lexicon.POSVerb, Frequency: 95},
	{Script: "កំពុង", Gloss: "currently/-ing", POS: lexicon.POSAdv, Frequency: 85},
	{Script: "រួច", Gloss: "already/finished", POS: lexicon.POSAdv, Frequency: 85},
	{Script: "នៅ", Gloss: "at/still", POS: lexicon.POSPrep, Frequency: 95},
	{Script: "និង", Gloss: "and", POS: lexicon.POSConj, Frequency: 95},
	{Script: "ឬ", Gloss: "or", POS: lexicon.POSConj, Frequency: 85},
	{Script: "ប៉ុន្តែ", Gloss: "but", POS: lexicon.POSConj, Frequency: 85},
	{Script: "ព្រោះ", Gloss: "because", POS: lexicon.POSConj, Frequency: 80},
	{Script: "ដូច្នេះ", Gloss: "so/therefore", POS: lexicon.POSConj, Frequency: 75},
}

var extended = []lexicon.Entry{
	{Script: "ចេះ", Gloss: "know how to", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ឃើញ", Gloss: "see", POS: lexicon.POSVerb, Frequency: 90},
	{Script: "ឮ", Gloss: "hear", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "ចាប់", Gloss: "catch/start", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "បើក", Gloss: "open/drive", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "បិទ", Gloss: "close", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ជួយ", Gloss: "help", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "រៀន", Gloss: "learn/study", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "បង្រៀន", Gloss: "teach", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ធ្វើការ", Gloss: "work", POS: lexicon.POSVerb, Frequency: 85},
	{Script: "សម្រាក", Gloss: "rest", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "លេង", Gloss: "play", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "កើត", Gloss: "be born/happen", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ស្លាប់", Gloss: "die", POS: lexicon.POSVerb, Frequency: 70},
	{Script: "ចូល", Gloss: "enter", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ចេញ", Gloss: "exit/leave", POS: lexicon.POSVerb, Frequency: 80},
	{Script: "ដឹក", Gloss: "transport/carry", POS: lexicon.POSVerb, Frequency: 70},
	{Script: "កាត់", Gloss: "cut", POS: lexicon.POSVerb, Frequency: 75},
	{Script: "ស្រី", Gloss: "female", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ប្រុស", Gloss: "male", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ពេញ", Gloss: "full", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "ទទេ", Gloss: "empty", POS: lexicon.POSAdj, Frequency: 70},
	{Script: "ជ្រៅ", Gloss: "deep", POS: lexicon.POSAdj, Frequency: 65},
	{Script: "រាក់", Gloss: "shallow", POS: lexicon.POSAdj, Frequency: 60},
	{Script: "ខ្ពស់", Gloss: "tall/high", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ទាប", Gloss: "short/low", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "វែង", Gloss: "long", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ខ្លី", Gloss: "short (length)", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "ធាត់", Gloss: "fat", POS: lexicon.POSAdj, Frequency: 65},
	{Script: "ស្គម", Gloss: "thin", POS: lexicon.POSAdj, Frequency: 65},
	{Script: "ក្លាហាន", Gloss: "brave", POS: lexicon.POSAdj, Frequency: 60},
	{Script: "ខ្លាច", Gloss: "afraid", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "រីករាយ", Gloss: "happy", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "ក្រៀមក្រំ", Gloss: "sad", POS: lexicon.POSAdj, Frequency: 70},
	{Script: "ខឹង", Gloss: "angry", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "អស់", Gloss: "finished/out of", POS: lexicon.POSAdj, Frequency: 80},
	{Script: "នៅសល់", Gloss: "remaining", POS: lexicon.POSAdj, Frequency: 65},
	{Script: "ឡាន", Gloss: "car", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ម៉ូតូ", Gloss: "motorcycle", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "កង់", Gloss: "bicycle", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ទូរស័ព្ទ", Gloss: "phone", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "កុំព្យូទ័រ", Gloss: "computer", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "សៀវភៅ", Gloss: "book", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "មេរៀន", Gloss: "lesson", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "បន្ទប់", Gloss: "room", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ទ្វារ", Gloss: "door", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "បង្អួច", Gloss: "window", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ដំបូល", Gloss: "roof", POS: lexicon.POSNoun, Frequency: 60},
	{Script: "ជណ្ដើរ", Gloss: "stairs", POS: lexicon.POSNoun, Frequency: 60},
	{Script: "សម្លៀកបំពាក់", Gloss: "clothes", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ស្បែកជើង", Gloss: "shoes", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ក្រដាស", Gloss: "paper", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ប៊ិច", Gloss: "pen", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "វ៉ែនតា", Gloss: "glasses", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "អាកាសធាតុ", Gloss: "weather", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ព្រះអាទិត្យ", Gloss: "sun", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ព្រះច័ន្ទ", Gloss: "moon", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ផ្កាយ", Gloss: "star", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ភ្លៀង", Gloss: "rain", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ខ្យល់", Gloss: "wind", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ពពក", Gloss: "cloud", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ដី", Gloss: "ground/land", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "មេឃ", Gloss: "sky", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ភ្នំ", Gloss: "mountain", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "សមុទ្រ", Gloss: "sea/ocean", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ទន្លេ", Gloss: "river", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "បឹង", Gloss: "lake", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ព្រៃ", Gloss: "forest", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ដើមឈើ", Gloss: "tree", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ផ្កា", Gloss: "flower", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ក្បាល", Gloss: "head", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ភ្នែក", Gloss: "eye", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ត្រចៀក", Gloss: "ear", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "ច្រមុះ", Gloss: "nose", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "មាត់", Gloss: "mouth", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ធ្មេញ", Gloss: "tooth", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "អណ្ដាត", Gloss: "tongue", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ដៃ", Gloss: "hand/arm", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ជើង", Gloss: "foot/leg", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ក", Gloss: "neck", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ស្មា", Gloss: "shoulder", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ខ្នង", Gloss: "back", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ពោះ", Gloss: "stomach", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "បេះដូង", Gloss: "heart", POS: lexicon.POSNoun, Frequency: 75},
	{Script: "សប្ដាហ៍", Gloss: "week", POS: lexicon.POSNoun, Frequency: 80},
	{Script: "ខែ", Gloss: "month", POS: lexicon.POSNoun, Frequency: 85},
	{Script: "ឆ្នាំ", Gloss: "year", POS: lexicon.POSNoun, Frequency: 90},
	{Script: "រដូវ", Gloss: "season", POS: lexicon.POSNoun, Frequency: 65},
	{Script: "ជានិច្ច", Gloss: "always", POS: lexicon.POSAdv, Frequency: 75},
	{Script: "ជារៀងរហូត", Gloss: "forever", POS: lexicon.POSAdv, Frequency: 60},
	{Script: "ពេលខ្លះ", Gloss: "sometimes", POS: lexicon.POSAdv, Frequency: 75},
	{Script: "មិនដែល", Gloss: "never", POS: lexicon.POSAdv, Frequency: 75},
	{Script: "អី​ៗ", Gloss: "whatever", POS: lexicon.POSPron, Frequency: 60},
	{Script: "អំពី", Gloss: "about/around", POS: lexicon.POSPrep, Frequency: 75},
	{Script: "តាម", Gloss: "follow/according to", POS: lexicon.POSPrep, Frequency: 80},
	{Script: "រហូត", Gloss: "until", POS: lexicon.POSPrep, Frequency: 70},
	{Script: "ដោយ", Gloss: "by/with", POS: lexicon.POSPrep, Frequency: 80},
	{Script: "សម្រាប់", Gloss: "for", POS: lexicon.POSPrep, Frequency: 85},
	{Script: "ជាមួយ", Gloss: "with/together", POS: lexicon.POSPrep, Frequency: 85},
	{Script: "គ្មាន", Gloss: "without/no", POS: lexicon.POSAdj, Frequency: 85},
	{Script: "ដោយសារ", Gloss: "because of", POS: lexicon.POSConj, Frequency: 70},
	{Script: "ទោះបី", Gloss: "although", POS: lexicon.POSConj, Frequency: 65},
	{Script: "បើ", Gloss: "if", POS: lexicon.POSConj, Frequency: 85},
	{Script: "ដូច", Gloss: "like/as", POS: lexicon.POSConj, Frequency: 80},
	{Script: "ពណ៌", Gloss: "color", POS: lexicon.POSNoun, Frequency: 70},
	{Script: "ក្រហម", Gloss: "red", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "លឿង", Gloss: "yellow", POS: lexicon.POSAdj, Frequency: 70},
	{Script: "បៃតង", Gloss: "green", POS: lexicon.POSAdj, Frequency: 70},
	{Script: "ខៀវ", Gloss: "blue", POS: lexicon.POSAdj, Frequency: 70},
	{Script: "ស", Gloss: "white", POS: lexicon.POSAdj, Frequency: 75},
	{Script: "ខ្មៅ", Gloss: "black", POS: lexicon.POSAdj, Frequency: 75},
}
