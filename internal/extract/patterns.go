package extract

import (
	"regexp"
	"strings"
)

// PatternKind identifies which scanner pattern produced a raw match and
// selects its resolution strategy.
type PatternKind string

const (
	KindDeadlineAbbrev      PatternKind = "deadline_abbreviations"
	KindDayTimeCombined     PatternKind = "day_time_combined"
	KindDayTimeAmPm         PatternKind = "day_time_ampm"
	KindRelativeTimeCombine PatternKind = "relative_time_combined"
	KindRelativeTimeAmPm    PatternKind = "relative_time_ampm"
	KindByContextTime       PatternKind = "by_context_time"
	KindMonthDayTime        PatternKind = "month_day_time"
	KindByTime              PatternKind = "by_time_en"
	KindMonthSlashDayYear   PatternKind = "mm/dd/yyyy"
	KindDaySlashMonthYear   PatternKind = "dd/mm/yyyy"
	KindMonthSlashDayYear2  PatternKind = "mm/dd/yy"
	KindDaySlashMonthYear2  PatternKind = "dd/mm/yy"
	KindMonthNameDayYear    PatternKind = "month_name_day_year"
	KindDayMonthNameYear    PatternKind = "day_month_name_year"
	KindMonthNameDay        PatternKind = "month_name_day"
	KindDayMonthName        PatternKind = "day_month_name"
	KindTimeColon           PatternKind = "time_12_24"
	KindTimeAmPm            PatternKind = "time_ampm"
	KindRelativeDay         PatternKind = "relative_en"
	KindRelativeDayExtended PatternKind = "relative_en_extended"
	KindWeekday             PatternKind = "day_of_week_en"
	KindModifierWeekday     PatternKind = "next_last_day_en"
	KindModifierPeriod      PatternKind = "next_this_last_en"
	KindInPeriod            PatternKind = "in_period_en"
	KindInTextPeriod        PatternKind = "in_text_period_en"
)

// RawMatch is one candidate span found by the scanner, with byte offsets
// into the normalized text.
type RawMatch struct {
	Start    int
	End      int
	Text     string
	Kind     PatternKind
	Captures map[string]string
}

// Len is the span length in bytes.
func (m RawMatch) Len() int {
	return m.End - m.Start
}

// Shared pattern fragments.
const (
	weekdayAlt = `Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday`
	monthAlt   = `January|February|March|April|May|June|July|August|September|October|November|December`
	hourAlt    = `[0-1]?[0-9]|2[0-3]`
	dayAlt     = `0?[1-9]|[12][0-9]|3[01]`
	monthNum   = `0?[1-9]|1[0-2]`
	unitAlt    = `days?|weeks?|months?|years?|hours?|minutes?`
	numberAlt  = `one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|` +
		`thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty`
)

type datePattern struct {
	re   *regexp.Regexp
	kind PatternKind
}

// datePatterns is the scanner's pattern table. Order is part of the
// correctness contract: abbreviations come first, and combined date+time
// patterns come before the bare fragments they contain so that overlap
// filtering keeps the most specific span.
var datePatterns = []datePattern{
	{regexp.MustCompile(`(?i)\b(EOD|COB|EOW|ASAP|end of day|as soon as possible|end of month|close of business|dopahar|midnight|afternoon|tonight|evening|morning|subah|shaam)\b`), KindDeadlineAbbrev},

	{regexp.MustCompile(`(?i)\b(?P<weekday>` + weekdayAlt + `)\s+(?:at\s+)?(?P<hour>` + hourAlt + `):?(?P<minute>[0-5][0-9])?\s*(?P<period>AM|PM|baje)?\b`), KindDayTimeCombined},
	{regexp.MustCompile(`(?i)\b(?P<weekday>` + weekdayAlt + `)\s+(?:at\s+)?(?P<hour>` + hourAlt + `)\s*(?P<period>AM|PM|baje)\b`), KindDayTimeAmPm},

	{regexp.MustCompile(`(?i)\b(?P<relday>tomorrow|today|kal|aaj)\s+(?:at\s+)?(?P<hour>` + hourAlt + `):?(?P<minute>[0-5][0-9])?\s*(?P<period>AM|PM|baje)?\b`), KindRelativeTimeCombine},
	{regexp.MustCompile(`(?i)\b(?P<relday>tomorrow|today|kal|aaj)\s+(?:at\s+)?(?P<hour>` + hourAlt + `)\s*(?P<period>AM|PM|baje)\b`), KindRelativeTimeAmPm},

	{regexp.MustCompile(`(?i)\b(?:by|till|until|tak)\s+(tonight|evening|morning|afternoon|midnight|EOD|COB|end of day|shaam|subah|dopahar|raat)\b`), KindByContextTime},

	{regexp.MustCompile(`(?i)\b(?P<month_name>` + monthAlt + `)\s+(?P<day>` + dayAlt + `)(?:st|nd|rd|th)?,?\s*(?P<year>\d{4})?\s+(?:at\s+)?(?P<hour>` + hourAlt + `):?(?P<minute>[0-5][0-9])?\s*(?P<period>AM|PM)?\b`), KindMonthDayTime},

	{regexp.MustCompile(`(?i)\b(?:by|till|until|tak)\s+(?P<time_expr>[^\s.,;!?$]+)`), KindByTime},

	{regexp.MustCompile(`\b(?P<month>` + monthNum + `)[/\-](?P<day>` + dayAlt + `)[/\-](?P<year>\d{4})\b`), KindMonthSlashDayYear},
	{regexp.MustCompile(`\b(?P<day>` + dayAlt + `)[/\-](?P<month>` + monthNum + `)[/\-](?P<year>\d{4})\b`), KindDaySlashMonthYear},
	{regexp.MustCompile(`\b(?P<month>` + monthNum + `)[/\-](?P<day>` + dayAlt + `)[/\-](?P<year>\d{2})\b`), KindMonthSlashDayYear2},
	{regexp.MustCompile(`\b(?P<day>` + dayAlt + `)[/\-](?P<month>` + monthNum + `)[/\-](?P<year>\d{2})\b`), KindDaySlashMonthYear2},

	{regexp.MustCompile(`(?i)\b(?P<month_name>` + monthAlt + `)\s+(?P<day>` + dayAlt + `)(?:st|nd|rd|th)?,?\s*(?P<year>\d{4})\b`), KindMonthNameDayYear},
	{regexp.MustCompile(`(?i)\b(?P<day>` + dayAlt + `)(?:st|nd|rd|th)?\s+(?P<month_name>` + monthAlt + `)\s+(?P<year>\d{4})\b`), KindDayMonthNameYear},
	{regexp.MustCompile(`(?i)\b(?P<month_name>` + monthAlt + `)\s+(?P<day>` + dayAlt + `)(?:st|nd|rd|th)?\b`), KindMonthNameDay},
	{regexp.MustCompile(`(?i)\b(?P<day>` + dayAlt + `)(?:st|nd|rd|th)?\s+(?P<month_name>` + monthAlt + `)\b`), KindDayMonthName},

	{regexp.MustCompile(`(?i)\b(?P<hour>` + hourAlt + `):(?P<minute>[0-5][0-9])\s*(?P<period>AM|PM)?\b`), KindTimeColon},
	{regexp.MustCompile(`(?i)\b(?P<hour>` + hourAlt + `)\s*(?P<period>AM|PM)\b`), KindTimeAmPm},

	{regexp.MustCompile(`(?i)\b(tomorrow|today|yesterday)\b`), KindRelativeDay},
	{regexp.MustCompile(`(?i)\b(day after tomorrow|day before yesterday)\b`), KindRelativeDayExtended},

	{regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`), KindWeekday},
	{regexp.MustCompile(`(?i)\b(?P<modifier>next|last|this)\s+(?P<weekday>` + weekdayAlt + `)\b`), KindModifierWeekday},
	{regexp.MustCompile(`(?i)\b(?P<modifier>next|this|last)\s+(?P<period>week|month|year)\b`), KindModifierPeriod},

	{regexp.MustCompile(`(?i)\b(?:in|within)\s+(?P<amount>\d+\.?\d*)\s*(?P<unit>` + unitAlt + `)\b`), KindInPeriod},
	{regexp.MustCompile(`(?i)\b(?:in|within)\s+(?P<amount>` + numberAlt + `)\s*(?P<unit>` + unitAlt + `)\b`), KindInTextPeriod},
}

// weekdayTimeStop rejects a weekday match whose weekday is immediately
// followed by a clock time ("next Friday at 5 PM", "Friday 10"): the
// combined day+time patterns own those spans, and a modifier match
// overlaps them without containment, so the overlap filter alone cannot
// suppress the date-only reading.
var weekdayTimeStop = regexp.MustCompile(`(?i)^\s+(?:\d{1,2}|at)`)

// byTimeExcluded lists bare "by <word>" targets that are already covered
// by the abbreviation or context patterns and must not surface as
// generic by-time matches.
var byTimeExcluded = map[string]struct{}{
	"eod": {}, "cob": {}, "eow": {}, "asap": {},
	"end": {}, "close": {}, "dopahar": {}, "midnight": {}, "afternoon": {},
}

// scan runs every pattern over the normalized text and collects all raw
// matches. Overlap resolution happens later; here every pattern reports
// independently.
func scan(normalized string) []RawMatch {
	var matches []RawMatch
	for _, p := range datePatterns {
		names := p.re.SubexpNames()
		for _, idx := range p.re.FindAllStringSubmatchIndex(normalized, -1) {
			m := RawMatch{
				Start:    idx[0],
				End:      idx[1],
				Text:     normalized[idx[0]:idx[1]],
				Kind:     p.kind,
				Captures: make(map[string]string),
			}
			for g, name := range names {
				if name == "" || idx[2*g] < 0 {
					continue
				}
				m.Captures[name] = normalized[idx[2*g]:idx[2*g+1]]
			}
			if p.kind == KindByTime {
				if _, excl := byTimeExcluded[strings.ToLower(m.Captures["time_expr"])]; excl {
					continue
				}
			}
			if (p.kind == KindModifierWeekday || p.kind == KindWeekday) && weekdayTimeStop.MatchString(normalized[m.End:]) {
				continue
			}
			matches = append(matches, m)
		}
	}
	return matches
}
