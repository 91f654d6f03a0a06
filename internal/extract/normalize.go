package extract

import "regexp"

// phraseRule rewrites one normalization pattern. Idiom rules use group
// references in the replacement; phrase rules substitute literally.
type phraseRule struct {
	re   *regexp.Regexp
	repl string
}

// idiomRules rewrite Urdu duration idioms whose word order has no direct
// phrase-map equivalent: "<N> din mein" and the inverted "mein <N> din"
// both become "in N days". These run before the phrase map so that the
// standalone "mein" mapping cannot break the construction apart.
var idiomRules = []phraseRule{
	{regexp.MustCompile(`(?i)\b(\d+)\s+din\s+mein\b`), "in ${1} days"},
	{regexp.MustCompile(`(?i)\b(\d+)\s+haftay?\s+mein\b`), "in ${1} weeks"},
	{regexp.MustCompile(`(?i)\b(\d+)\s+mahinay?\s+mein\b`), "in ${1} months"},
	{regexp.MustCompile(`(?i)\b(\d+)\s+ghante?\s+mein\b`), "in ${1} hours"},
	{regexp.MustCompile(`(?i)\b(\d+)\s+minute\s+mein\b`), "in ${1} minutes"},
	{regexp.MustCompile(`(?i)\bmein\s+(\d+)\s+din\b`), "in ${1} days"},
	{regexp.MustCompile(`(?i)\bmein\s+(\d+)\s+haftay?\b`), "in ${1} weeks"},
	{regexp.MustCompile(`(?i)\bmein\s+(\d+)\s+mahinay?\b`), "in ${1} months"},
	{regexp.MustCompile(`(?i)\bmein\s+(\d+)\s+ghante?\b`), "in ${1} hours"},
	{regexp.MustCompile(`(?i)\bmein\s+(\d+)\s+minute\b`), "in ${1} minutes"},
}

// Normalize rewrites Romanized-Urdu temporal vocabulary into English so
// the downstream scanner only deals with one language. Pure-English text
// passes through unchanged. Longer phrases are substituted before the
// shorter phrases they contain.
func (e *Engine) Normalize(text string) string {
	out := text
	for _, r := range idiomRules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	for _, r := range e.phraseRules {
		out = r.re.ReplaceAllLiteralString(out, r.repl)
	}
	return out
}

// compilePhraseRules builds one case-insensitive word-boundary rule per
// lexicon phrase, in longest-first order.
func compilePhraseRules(phrasesByLength []string, urduToEnglish map[string]string) []phraseRule {
	rules := make([]phraseRule, 0, len(phrasesByLength))
	for _, phrase := range phrasesByLength {
		rules = append(rules, phraseRule{
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
			repl: urduToEnglish[phrase],
		})
	}
	return rules
}
