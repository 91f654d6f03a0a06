// Package lexicon holds the static vocabulary tables used by deadline
// extraction: the Romanized-Urdu→English phrase map, month/weekday/number
// lookups, the weighted deadline keyword table, and the first-word
// stoplist for recipient detection.
//
// A Lexicon is pure data. It is built once at startup and shared
// read-only by every extraction call; nothing in this package mutates it
// afterwards, so no synchronization is needed.
package lexicon

import "time"

// Lexicon is the immutable vocabulary configuration for an extraction
// engine. Construct it with Default and pass it by reference.
type Lexicon struct {
	// UrduToEnglish maps Romanized-Urdu phrases to their English
	// equivalents. Keys are matched longest-first with word-boundary
	// anchoring; several near-duplicate source entries collapse to the
	// same target, which is fine because duplicates map to equivalent
	// output.
	UrduToEnglish map[string]string

	// PhrasesByLength holds the UrduToEnglish keys sorted by length
	// descending, so the normalizer never lets a short phrase pre-empt a
	// longer phrase that contains it.
	PhrasesByLength []string

	// DeadlineKeywords maps context keywords to a deadline-likelihood
	// weight in [0,1]. High weights mark prospective-deadline cues
	// ("deadline", "jama karna hai"); low weights mark biographical cues
	// ("born", "graduated") that down-rank incidental date mentions.
	DeadlineKeywords map[string]float64

	Months      map[string]time.Month
	Weekdays    map[string]time.Weekday
	NumberWords map[string]int
	Seasons     map[string]time.Month

	// FirstWordStoplist lists common nouns, verbs, and role words that a
	// capitalized message-leading token must not be mistaken for a
	// recipient name.
	FirstWordStoplist map[string]struct{}
}

// ContextHour is the canonical clock time assigned to a "by <context
// word>" deadline expression.
type ContextHour struct {
	Word   string
	Hour   int
	Minute int
}

// ContextHours resolves by/till/until context words to today's date at a
// fixed hour. Order matters: entries are checked by substring containment
// in their listed order, so "tonight" wins before "eod" in mixed text.
var ContextHours = []ContextHour{
	{"tonight", 23, 59},
	{"evening", 18, 0},
	{"shaam", 18, 0},
	{"afternoon", 15, 0},
	{"dopahar", 15, 0},
	{"morning", 9, 0},
	{"subah", 9, 0},
	{"midnight", 23, 59},
	{"raat", 23, 59},
	{"eod", 17, 0},
	{"cob", 17, 0},
	{"end of day", 17, 0},
}

// phrasePair preserves source ordering for tables whose original data
// contains duplicate keys; later entries win when building the map.
type phrasePair struct {
	from, to string
}

type weightPair struct {
	keyword string
	weight  float64
}

var defaultLexicon = build()

// Default returns the process-wide Lexicon. The returned value is shared
// and must not be modified.
func Default() *Lexicon {
	return defaultLexicon
}

func build() *Lexicon {
	lx := &Lexicon{
		UrduToEnglish:     make(map[string]string, len(urduPhrases)),
		DeadlineKeywords:  make(map[string]float64, len(keywordWeights)),
		FirstWordStoplist: make(map[string]struct{}, len(firstWordStoplist)),
		Months: map[string]time.Month{
			"january": time.January, "february": time.February,
			"march": time.March, "april": time.April, "may": time.May,
			"june": time.June, "july": time.July, "august": time.August,
			"september": time.September, "october": time.October,
			"november": time.November, "december": time.December,
		},
		Weekdays: map[string]time.Weekday{
			"monday": time.Monday, "tuesday": time.Tuesday,
			"wednesday": time.Wednesday, "thursday": time.Thursday,
			"friday": time.Friday, "saturday": time.Saturday,
			"sunday": time.Sunday,
		},
		NumberWords: map[string]int{
			"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
			"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
			"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
			"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
			"nineteen": 19, "twenty": 20,
		},
		Seasons: map[string]time.Month{
			"spring": time.March, "summer": time.June, "fall": time.September,
			"autumn": time.September, "winter": time.December,
			"bahar": time.March, "garmi": time.June, "kharif": time.September,
			"sardi": time.December,
		},
	}

	for _, p := range urduPhrases {
		lx.UrduToEnglish[p.from] = p.to
	}
	lx.PhrasesByLength = sortPhrasesByLength(lx.UrduToEnglish)

	for _, w := range keywordWeights {
		lx.DeadlineKeywords[w.keyword] = w.weight
	}

	for _, w := range firstWordStoplist {
		lx.FirstWordStoplist[w] = struct{}{}
	}

	return lx
}

func sortPhrasesByLength(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Length descending; ties alphabetical so normalization is
	// deterministic across runs.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0; j-- {
			a, b := keys[j-1], keys[j]
			if len(b) > len(a) || (len(b) == len(a) && b < a) {
				keys[j-1], keys[j] = b, a
			} else {
				break
			}
		}
	}
	return keys
}
