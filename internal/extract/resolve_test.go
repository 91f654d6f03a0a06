package extract

import (
	"testing"
	"time"
)

func mustMatch(t *testing.T, text string, kind PatternKind) RawMatch {
	t.Helper()
	m, ok := findKind(filterOverlaps(scan(text)), kind)
	if !ok {
		t.Fatalf("no %s match in %q", kind, text)
	}
	return m
}

func TestResolveSlashDate(t *testing.T) {
	e := newTestEngine()
	m := mustMatch(t, "12/25/2025", KindMonthSlashDayYear)
	when, hasTime, ok := e.resolveAbsolute(m, testNow)
	if !ok || hasTime {
		t.Fatalf("resolve = (%v, %v, %v)", when, hasTime, ok)
	}
	want := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	if !when.Equal(want) {
		t.Errorf("when = %v, want %v", when, want)
	}
}

func TestResolveTwoDigitYearPivot(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		text string
		year int
	}{
		{"12/25/49", 2049},
		{"12/25/75", 1975},
	}
	for _, tt := range tests {
		m := mustMatch(t, tt.text, KindMonthSlashDayYear2)
		when, _, ok := e.resolveAbsolute(m, testNow)
		if !ok {
			t.Fatalf("%s did not resolve", tt.text)
		}
		if when.Year() != tt.year {
			t.Errorf("%s year = %d, want %d", tt.text, when.Year(), tt.year)
		}
	}
}

func TestResolveInvalidCalendarDate(t *testing.T) {
	e := newTestEngine()
	m := mustMatch(t, "4/31/2025", KindMonthSlashDayYear)
	if _, _, ok := e.resolveAbsolute(m, testNow); ok {
		t.Error("April 31 resolved; want rejection")
	}
}

func TestResolveBareWeekdayStrictlyFuture(t *testing.T) {
	e := newTestEngine()

	m := mustMatch(t, "Friday", KindWeekday)
	when, _, ok := e.resolveAbsolute(m, testNow)
	if !ok {
		t.Fatal("Friday did not resolve")
	}
	if want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local); !when.Equal(want) {
		t.Errorf("Friday = %v, want %v", when, want)
	}

	// testNow is a Wednesday; a bare "Wednesday" means next week.
	m = mustMatch(t, "Wednesday", KindWeekday)
	when, _, _ = e.resolveAbsolute(m, testNow)
	if want := time.Date(2025, time.March, 19, 0, 0, 0, 0, time.Local); !when.Equal(want) {
		t.Errorf("Wednesday = %v, want %v", when, want)
	}
}

func TestResolveModifierWeekday(t *testing.T) {
	e := newTestEngine()

	m := mustMatch(t, "next Friday", KindModifierWeekday)
	when, _, ok := e.resolveAbsolute(m, testNow)
	if !ok {
		t.Fatal("next Friday did not resolve")
	}
	if want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local); !when.Equal(want) {
		t.Errorf("next Friday = %v, want %v", when, want)
	}

	m = mustMatch(t, "last Monday", KindModifierWeekday)
	when, _, _ = e.resolveAbsolute(m, testNow)
	if want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local); !when.Equal(want) {
		t.Errorf("last Monday = %v, want %v", when, want)
	}
}

func TestResolveModifierPeriod(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		text string
		want time.Time
	}{
		{"next week", time.Date(2025, time.March, 17, 0, 0, 0, 0, time.Local)},
		{"this month", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)},
		{"next month", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local)},
		{"next year", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		m := mustMatch(t, tt.text, KindModifierPeriod)
		when, hasTime, ok := e.resolveAbsolute(m, testNow)
		if !ok || hasTime {
			t.Fatalf("%q resolve = (%v, %v, %v)", tt.text, when, hasTime, ok)
		}
		if !when.Equal(tt.want) {
			t.Errorf("%q = %v, want %v", tt.text, when, tt.want)
		}
	}
}

func TestResolveContextTime(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		text         string
		hour, minute int
	}{
		{"by tonight", 23, 59},
		{"until evening", 18, 0},
		{"by morning", 9, 0},
	}
	for _, tt := range tests {
		m := mustMatch(t, tt.text, KindByContextTime)
		when, hasTime, ok := e.resolveAbsolute(m, testNow)
		if !ok || !hasTime {
			t.Fatalf("%q resolve = (%v, %v, %v)", tt.text, when, hasTime, ok)
		}
		if when.Day() != testNow.Day() || when.Hour() != tt.hour || when.Minute() != tt.minute {
			t.Errorf("%q = %v, want today %02d:%02d", tt.text, when, tt.hour, tt.minute)
		}
	}
}

func TestResolveCombinedDayTime(t *testing.T) {
	e := newTestEngine()

	m := mustMatch(t, "tomorrow at 3:30 PM", KindRelativeTimeCombine)
	when, hasTime, ok := e.resolveAbsolute(m, testNow)
	if !ok || !hasTime {
		t.Fatalf("resolve = (%v, %v, %v)", when, hasTime, ok)
	}
	if want := time.Date(2025, time.March, 13, 15, 30, 0, 0, time.Local); !when.Equal(want) {
		t.Errorf("when = %v, want %v", when, want)
	}

	// 12 AM is midnight, not noon.
	m = mustMatch(t, "Friday at 12 AM", KindDayTimeCombined)
	when, _, ok = e.resolveAbsolute(m, testNow)
	if !ok {
		t.Fatal("Friday at 12 AM did not resolve")
	}
	if when.Hour() != 0 {
		t.Errorf("12 AM hour = %d, want 0", when.Hour())
	}
}

func TestResolveRelativeDays(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		text string
		kind PatternKind
		want time.Time
	}{
		{"today", KindRelativeDay, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.Local)},
		{"tomorrow", KindRelativeDay, time.Date(2025, time.March, 13, 0, 0, 0, 0, time.Local)},
		{"day after tomorrow", KindRelativeDayExtended, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		m := mustMatch(t, tt.text, tt.kind)
		when, _, ok := e.resolveAbsolute(m, testNow)
		if !ok {
			t.Fatalf("%q did not resolve", tt.text)
		}
		if !when.Equal(tt.want) {
			t.Errorf("%q = %v, want %v", tt.text, when, tt.want)
		}
	}
}

func TestResolveTimeOnlyIsNotADeadline(t *testing.T) {
	e := newTestEngine()
	m := mustMatch(t, "around 3:30 PM somewhere", KindTimeColon)
	if _, _, ok := e.resolveAbsolute(m, testNow); ok {
		t.Error("time without a date resolved")
	}
}
