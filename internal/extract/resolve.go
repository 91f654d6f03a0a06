package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/muddatlabs/muddat/internal/lexicon"
)

// resolveAbsolute converts a raw match into a calendar timestamp.
// The second return reports whether the match carried a time-of-day
// component; the third reports whether a date was resolved at all.
// Every failure mode (missing capture, invalid calendar date) returns
// ok=false rather than an error: a match that cannot be resolved simply
// contributes nothing.
func (e *Engine) resolveAbsolute(m RawMatch, now time.Time) (time.Time, bool, bool) {
	switch m.Kind {
	case KindDayTimeCombined, KindDayTimeAmPm, KindRelativeTimeCombine, KindRelativeTimeAmPm, KindMonthDayTime:
		return e.resolveCombined(m, now)

	case KindByContextTime:
		return resolveContextTime(m.Text, now)

	case KindMonthSlashDayYear, KindDaySlashMonthYear:
		day, okD := captureInt(m, "day")
		month, okM := captureInt(m, "month")
		year, okY := captureInt(m, "year")
		if !okD || !okM || !okY {
			return time.Time{}, false, false
		}
		return calendarDate(year, month, day)

	case KindMonthSlashDayYear2, KindDaySlashMonthYear2:
		day, okD := captureInt(m, "day")
		month, okM := captureInt(m, "month")
		year, okY := captureInt(m, "year")
		if !okD || !okM || !okY {
			return time.Time{}, false, false
		}
		// Two-digit year pivot: <50 is 2000s, otherwise 1900s.
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		return calendarDate(year, month, day)

	case KindMonthNameDayYear, KindDayMonthNameYear:
		month, okM := e.captureMonth(m)
		day, okD := captureInt(m, "day")
		year, okY := captureInt(m, "year")
		if !okM || !okD || !okY {
			return time.Time{}, false, false
		}
		return calendarDate(year, int(month), day)

	case KindMonthNameDay, KindDayMonthName:
		month, okM := e.captureMonth(m)
		day, okD := captureInt(m, "day")
		if !okM || !okD {
			return time.Time{}, false, false
		}
		return calendarDate(now.Year(), int(month), day)

	case KindRelativeDay:
		switch strings.ToLower(m.Text) {
		case "today":
			return midnight(now), false, true
		case "tomorrow":
			return midnight(now).AddDate(0, 0, 1), false, true
		case "yesterday":
			return midnight(now).AddDate(0, 0, -1), false, true
		}
		return time.Time{}, false, false

	case KindRelativeDayExtended:
		switch strings.ToLower(m.Text) {
		case "day after tomorrow":
			return midnight(now).AddDate(0, 0, 2), false, true
		case "day before yesterday":
			return midnight(now).AddDate(0, 0, -2), false, true
		}
		return time.Time{}, false, false

	case KindWeekday:
		wd, ok := e.lx.Weekdays[strings.ToLower(strings.TrimSpace(m.Text))]
		if !ok {
			return time.Time{}, false, false
		}
		// Bare weekday always means the next upcoming occurrence; if
		// today is that weekday, it lands 7 days out, not today.
		return nextWeekday(now, wd), false, true

	case KindModifierWeekday:
		wd, ok := e.lx.Weekdays[strings.ToLower(m.Captures["weekday"])]
		if !ok {
			return time.Time{}, false, false
		}
		switch strings.ToLower(m.Captures["modifier"]) {
		case "next":
			return nextWeekday(now, wd), false, true
		case "last":
			return lastWeekday(now, wd), false, true
		case "this":
			// Current ISO week's occurrence, which may already be past.
			diff := isoWeekday(wd) - isoWeekday(now.Weekday())
			return midnight(now).AddDate(0, 0, diff), false, true
		}
		return time.Time{}, false, false

	case KindModifierPeriod:
		return resolveModifierPeriod(m, now)

	case KindTimeColon, KindTimeAmPm:
		// A time without a date is not a deadline by itself.
		return time.Time{}, false, false

	case KindDeadlineAbbrev, KindByTime, KindInPeriod, KindInTextPeriod:
		// Abbreviations feed the context scorer only; in/within periods
		// are handled by the relative resolver.
		return time.Time{}, false, false
	}

	return time.Time{}, false, false
}

// resolveCombined handles date+time kinds: resolve the date portion,
// then overlay the captured clock time converted to 24-hour form.
func (e *Engine) resolveCombined(m RawMatch, now time.Time) (time.Time, bool, bool) {
	hour, ok := captureInt(m, "hour")
	if !ok {
		return time.Time{}, false, false
	}
	minute := 0
	if v, has := captureInt(m, "minute"); has {
		minute = v
	}
	// 12-hour to 24-hour: 12 AM is midnight, 12 PM stays noon. A bare
	// "baje" marker carries no AM/PM information and leaves the hour
	// untouched.
	switch strings.ToUpper(m.Captures["period"]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return time.Time{}, false, false
	}

	var base time.Time
	switch m.Kind {
	case KindDayTimeCombined, KindDayTimeAmPm:
		wd, okW := e.lx.Weekdays[strings.ToLower(m.Captures["weekday"])]
		if !okW {
			return time.Time{}, false, false
		}
		base = nextWeekday(now, wd)

	case KindRelativeTimeCombine, KindRelativeTimeAmPm:
		switch strings.ToLower(m.Captures["relday"]) {
		case "tomorrow", "kal":
			base = midnight(now).AddDate(0, 0, 1)
		case "today", "aaj":
			base = midnight(now)
		default:
			return time.Time{}, false, false
		}

	case KindMonthDayTime:
		month, okM := e.captureMonth(m)
		day, okD := captureInt(m, "day")
		if !okM || !okD {
			return time.Time{}, false, false
		}
		year := now.Year()
		if v, has := captureInt(m, "year"); has {
			year = v
		}
		d, _, okC := calendarDate(year, int(month), day)
		if !okC {
			return time.Time{}, false, false
		}
		base = d

	default:
		return time.Time{}, false, false
	}

	ts := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	return ts, true, true
}

// resolveContextTime maps "by tonight", "till shaam" and friends to
// today's date at a fixed canonical clock time. The hour table is a
// compatibility contract; see lexicon.ContextHours.
func resolveContextTime(matched string, now time.Time) (time.Time, bool, bool) {
	text := strings.ToLower(matched)
	for _, ch := range lexicon.ContextHours {
		if strings.Contains(text, ch.Word) {
			ts := time.Date(now.Year(), now.Month(), now.Day(), ch.Hour, ch.Minute, 0, 0, now.Location())
			return ts, true, true
		}
	}
	return time.Time{}, false, false
}

func resolveModifierPeriod(m RawMatch, now time.Time) (time.Time, bool, bool) {
	modifier := strings.ToLower(m.Captures["modifier"])
	period := strings.ToLower(m.Captures["period"])
	today := midnight(now)

	switch period {
	case "week":
		// Week arithmetic is ISO-weekday-based, Monday first.
		switch modifier {
		case "next":
			return today.AddDate(0, 0, 7-isoWeekday(now.Weekday())), false, true
		case "this":
			return today.AddDate(0, 0, -isoWeekday(now.Weekday())), false, true
		case "last":
			return today.AddDate(0, 0, -(isoWeekday(now.Weekday()) + 7)), false, true
		}
	case "month":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		switch modifier {
		case "next":
			return firstOfMonth.AddDate(0, 1, 0), false, true
		case "this":
			return firstOfMonth, false, true
		case "last":
			return firstOfMonth.AddDate(0, -1, 0), false, true
		}
	case "year":
		switch modifier {
		case "next":
			return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location()), false, true
		case "this":
			return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), false, true
		case "last":
			return time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location()), false, true
		}
	}
	return time.Time{}, false, false
}

func (e *Engine) captureMonth(m RawMatch) (time.Month, bool) {
	name, ok := m.Captures["month_name"]
	if !ok {
		return 0, false
	}
	month, ok := e.lx.Months[strings.ToLower(name)]
	return month, ok
}

func captureInt(m RawMatch, name string) (int, bool) {
	v, ok := m.Captures[name]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// calendarDate builds a validated midnight date. time.Date silently
// normalizes out-of-range days (April 31 becomes May 1), so the result
// is checked against the inputs and rejected on mismatch.
func calendarDate(year, month, day int) (time.Time, bool, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false, false
	}
	return d, false, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isoWeekday maps Go's Sunday-first weekday to ISO Monday=0 indexing.
func isoWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// nextWeekday returns the next occurrence of wd strictly after today.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	ahead := isoWeekday(wd) - isoWeekday(now.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	return midnight(now).AddDate(0, 0, ahead)
}

// lastWeekday returns the most recent past occurrence of wd.
func lastWeekday(now time.Time, wd time.Weekday) time.Time {
	behind := isoWeekday(now.Weekday()) - isoWeekday(wd)
	if behind <= 0 {
		behind += 7
	}
	return midnight(now).AddDate(0, 0, -behind)
}
