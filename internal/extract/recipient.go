package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// RecipientUnclear is returned when no rule identifies an addressee.
const RecipientUnclear = "unclear"

// RecipientYou is returned when the message addresses the reader in the
// second person.
const RecipientYou = "you"

var (
	dearRE       = regexp.MustCompile(`(?i)\bdear\s+([a-z][a-z]+)`)
	possessiveRE = regexp.MustCompile(`\b([A-Z][a-z]+)'s\b`)
	capitalRE    = regexp.MustCompile(`\b([A-Z][a-z]+)\b`)
)

// historyStoplist disqualifies a few determiners when scanning prior
// messages for candidate names.
var historyStoplist = map[string]struct{}{
	"the": {}, "this": {}, "that": {}, "please": {},
}

// DetectRecipient guesses who a message's deadline is directed to.
// Rules run in priority order and the first hit wins:
//
//  1. "Dear <Name>" in the raw text, then in the normalized text
//  2. a possessive "<Name>'s"
//  3. a capitalized first word that is not a common noun
//  4. second-person "you"/"your"
//  5. a name from the last three history messages repeated here
//
// Anything else is RecipientUnclear. This is a lexical heuristic, not a
// resolved identity, and carries no confidence score.
func (e *Engine) DetectRecipient(text, sender string, history []string) string {
	normalized := e.Normalize(text)
	combined := strings.ToLower(text) + " " + strings.ToLower(normalized)

	if m := dearRE.FindStringSubmatch(text); m != nil {
		if name := capitalize(m[1]); name != sender && m[1] != sender {
			return name
		}
	} else if m := dearRE.FindStringSubmatch(normalized); m != nil {
		if name := capitalize(m[1]); name != sender && m[1] != sender {
			return name
		}
	}

	if m := possessiveRE.FindStringSubmatch(text); m != nil {
		if m[1] != sender {
			return capitalize(m[1])
		}
	}

	if words := strings.Fields(text); len(words) > 0 {
		first := strings.TrimRight(words[0], ".,!?;:")
		if len(first) > 1 && startsUpper(first) && first != sender {
			if _, common := e.lx.FirstWordStoplist[strings.ToLower(first)]; !common {
				return strings.TrimSuffix(first, "'s")
			}
		}
	}

	// Substring check on purpose: "your", "yours" and similar all count
	// as second-person address.
	if strings.Contains(combined, "you") {
		return RecipientYou
	}

	if len(history) > 0 {
		recent := history
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		for i := len(recent) - 1; i >= 0; i-- {
			m := capitalRE.FindStringSubmatch(recent[i])
			if m == nil {
				continue
			}
			name := m[1]
			if name == sender || name == "You" {
				continue
			}
			if _, stop := historyStoplist[strings.ToLower(name)]; stop {
				continue
			}
			if strings.Contains(combined, strings.ToLower(name)) {
				return name
			}
		}
	}

	return RecipientUnclear
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
