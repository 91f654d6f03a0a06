package lexicon

import "testing"

func TestDefaultTables(t *testing.T) {
	lx := Default()

	if got := lx.UrduToEnglish["kal"]; got != "tomorrow" {
		t.Errorf("kal = %q, want tomorrow", got)
	}
	if got := lx.UrduToEnglish["tak"]; got != "by" {
		t.Errorf("tak = %q, want by", got)
	}
	if got := lx.NumberWords["saat"]; got != 0 {
		t.Errorf("NumberWords has Urdu key saat; number words are English-only")
	}
	if got := lx.NumberWords["seven"]; got != 7 {
		t.Errorf("seven = %d, want 7", got)
	}
}

func TestLaterDuplicateWins(t *testing.T) {
	lx := Default()
	// "jama" appears twice in the source table; the later 0.99 entry wins.
	if got := lx.DeadlineKeywords["jama"]; got != 0.99 {
		t.Errorf("jama = %v, want 0.99", got)
	}
	if got := lx.DeadlineKeywords["order"]; got != 0.7 {
		t.Errorf("order = %v, want 0.7", got)
	}
}

func TestPhrasesSortedByLength(t *testing.T) {
	lx := Default()
	if len(lx.PhrasesByLength) != len(lx.UrduToEnglish) {
		t.Fatalf("phrase count %d != map size %d", len(lx.PhrasesByLength), len(lx.UrduToEnglish))
	}
	for i := 1; i < len(lx.PhrasesByLength); i++ {
		prev, cur := lx.PhrasesByLength[i-1], lx.PhrasesByLength[i]
		if len(cur) > len(prev) {
			t.Fatalf("phrases not length-sorted: %q before %q", prev, cur)
		}
		if len(cur) == len(prev) && cur < prev {
			t.Fatalf("equal-length phrases not alphabetical: %q before %q", prev, cur)
		}
	}
}

func TestContextHoursOrder(t *testing.T) {
	if ContextHours[0].Word != "tonight" {
		t.Errorf("first context word = %q, want tonight", ContextHours[0].Word)
	}
	for _, ch := range ContextHours {
		if ch.Hour < 0 || ch.Hour > 23 || ch.Minute < 0 || ch.Minute > 59 {
			t.Errorf("%s has out-of-range time %02d:%02d", ch.Word, ch.Hour, ch.Minute)
		}
	}
}
