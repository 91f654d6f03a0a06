package extract

import (
	"sort"
	"strings"
)

// contextWindow is the number of bytes inspected on each side of a match
// when looking for a deadline keyword.
const contextWindow = 20

type weightedKeyword struct {
	keyword string
	weight  float64
}

// scoreContext inspects the text surrounding a match and returns the
// highest-weighted lexicon keyword literally contained in that window,
// with its weight. No keyword yields ("", 0).
//
// The keyword list deliberately mixes strong deadline cues with
// low-weight biographical cues ("born", "was"): a low cue winning the
// window down-ranks dates that are history rather than obligations. A
// negative cue sitting next to a genuine deadline can suppress it; that
// is a property of the scoring policy, not a defect.
func (e *Engine) scoreContext(text string, start, length int) (string, float64) {
	winStart := start - contextWindow
	if winStart < 0 {
		winStart = 0
	}
	winEnd := start + length + contextWindow
	if winEnd > len(text) {
		winEnd = len(text)
	}
	if winStart >= winEnd {
		return "", 0
	}
	window := strings.ToLower(text[winStart:winEnd])

	for _, wk := range e.keywordsByWeight {
		if strings.Contains(window, wk.keyword) {
			return wk.keyword, wk.weight
		}
	}
	return "", 0
}

// sortKeywordsByWeight orders keywords weight-descending (alphabetical on
// ties) so the scorer's scan is deterministic and the first hit is always
// the highest-weighted keyword present.
func sortKeywordsByWeight(weights map[string]float64) []weightedKeyword {
	out := make([]weightedKeyword, 0, len(weights))
	for k, w := range weights {
		out = append(out, weightedKeyword{keyword: k, weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].weight != out[j].weight {
			return out[i].weight > out[j].weight
		}
		return out[i].keyword < out[j].keyword
	})
	return out
}
