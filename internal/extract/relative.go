package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inPeriodRE     = regexp.MustCompile(`(?i)\b(?:in|within)\s+(?P<amount>\d+\.?\d*)\s*(?P<unit>days?|weeks?|months?|years?|hours?|minutes?)\b`)
	inTextPeriodRE = regexp.MustCompile(`(?i)\b(?:in|within)\s+(?P<amount>one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\s*(?P<unit>days?|weeks?|months?|years?|hours?|minutes?)\b`)
)

// resolveRelative handles "in/within N unit" expressions as a second
// resolution pass, used only when resolveAbsolute declined the match.
// Amounts may be numeric (decimals truncate to integers) or spelled-out
// number words. Days and weeks are fixed durations from midnight today;
// months and years are calendar-aware; hours and minutes count from the
// current instant and therefore carry a time-of-day.
func (e *Engine) resolveRelative(text string, now time.Time) (time.Time, bool, bool) {
	normalized := strings.ToLower(e.Normalize(text))

	amount := -1
	unit := ""
	if m := inPeriodRE.FindStringSubmatch(normalized); m != nil {
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return time.Time{}, false, false
		}
		amount = int(f)
		unit = m[2]
	} else if m := inTextPeriodRE.FindStringSubmatch(normalized); m != nil {
		n, ok := e.lx.NumberWords[m[1]]
		if !ok {
			return time.Time{}, false, false
		}
		amount = n
		unit = m[2]
	} else {
		return time.Time{}, false, false
	}

	today := midnight(now)
	switch strings.TrimSuffix(strings.ToLower(unit), "s") {
	case "day":
		return today.AddDate(0, 0, amount), false, true
	case "week":
		return today.AddDate(0, 0, 7*amount), false, true
	case "month":
		return addMonthsClamped(today, amount), false, true
	case "year":
		return addMonthsClamped(today, 12*amount), false, true
	case "hour":
		return now.Add(time.Duration(amount) * time.Hour), true, true
	case "minute":
		return now.Add(time.Duration(amount) * time.Minute), true, true
	}
	return time.Time{}, false, false
}

// addMonthsClamped advances t by whole months, clamping the day-of-month
// to the target month's length. time.AddDate would normalize Jan 31 plus
// one month into early March; deadline arithmetic wants Feb 28/29.
func addMonthsClamped(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	target := time.Month(month + 1)

	day := t.Day()
	if max := daysInMonth(year, target); day > max {
		day = max
	}
	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
