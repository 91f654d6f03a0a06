package extract

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExtractReportByFriday(t *testing.T) {
	e := newTestEngine()
	deadlines := e.Extract("Please submit the report by Friday at 5 PM")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	d := deadlines[0]
	if d.DateText != "Friday at 5 PM" {
		t.Errorf("date_text = %q, want %q", d.DateText, "Friday at 5 PM")
	}
	if d.Parsed != "2025-03-14 17:00:00" {
		t.Errorf("parsed = %q, want 2025-03-14 17:00:00", d.Parsed)
	}
	if d.Confidence < 0.85 {
		t.Errorf("confidence = %v, want >= 0.85", d.Confidence)
	}
	if !d.HasTime {
		t.Error("HasTime = false, want true")
	}
}

func TestExtractCombinedKindsAreBoosted(t *testing.T) {
	e := newTestEngine()
	// One input per boosted kind, each with no strong keyword nearby, so
	// the 0.85 floor is doing the work.
	tests := []struct {
		text   string
		parsed string
	}{
		{"Friday at 5:30 PM", "2025-03-14 17:30:00"},
		{"Friday 5 PM", "2025-03-14 17:00:00"},
		{"tomorrow at 3:30 PM", "2025-03-13 15:30:00"},
		{"tomorrow 9 AM", "2025-03-13 09:00:00"},
		{"by tonight", "2025-03-12 23:59:00"},
	}
	for _, tt := range tests {
		deadlines := e.Extract(tt.text)
		if len(deadlines) != 1 {
			t.Fatalf("%q: got %d deadlines, want 1: %+v", tt.text, len(deadlines), deadlines)
		}
		d := deadlines[0]
		if d.Parsed != tt.parsed {
			t.Errorf("%q: parsed = %q, want %q", tt.text, d.Parsed, tt.parsed)
		}
		if d.Confidence < 0.85 {
			t.Errorf("%q: confidence = %v, want >= 0.85", tt.text, d.Confidence)
		}
	}
}

func TestExtractModifierWeekdayBeforeTime(t *testing.T) {
	e := newTestEngine()
	// "next Friday" must not surface as a separate date-only deadline
	// alongside the combined day+time reading.
	deadlines := e.Extract("Please submit the report by next Friday at 5 PM")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	d := deadlines[0]
	if d.DateText != "Friday at 5 PM" {
		t.Errorf("date_text = %q, want %q", d.DateText, "Friday at 5 PM")
	}
	if d.Parsed != "2025-03-14 17:00:00" {
		t.Errorf("parsed = %q, want 2025-03-14 17:00:00", d.Parsed)
	}
}

func TestExtractBiographicalDateDropped(t *testing.T) {
	e := newTestEngine()
	if deadlines := e.Extract("I was born on January 5, 1990"); len(deadlines) != 0 {
		t.Errorf("got %d deadlines, want 0: %+v", len(deadlines), deadlines)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestEngine()
	if got := e.Extract(""); len(got) != 0 {
		t.Errorf("Extract(\"\") = %v", got)
	}
	if got := e.Extract("   \n\t"); len(got) != 0 {
		t.Errorf("Extract(whitespace) = %v", got)
	}
}

func TestExtractUrduSevenDays(t *testing.T) {
	e := newTestEngine()
	deadlines := e.Extract("sare documents within seven days jama karna honge")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	d := deadlines[0]
	if d.Parsed != "2025-03-19" {
		t.Errorf("parsed = %q, want 2025-03-19", d.Parsed)
	}
	if d.HasTime {
		t.Error("HasTime = true for a date-only deadline")
	}
	if d.Confidence < 0.9 {
		t.Errorf("confidence = %v, want >= 0.9", d.Confidence)
	}
}

func TestExtractByContextTime(t *testing.T) {
	e := newTestEngine()
	deadlines := e.Extract("Dear Ahmed, please submit the report by EOD")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	if deadlines[0].Parsed != "2025-03-12 17:00:00" {
		t.Errorf("parsed = %q, want 2025-03-12 17:00:00", deadlines[0].Parsed)
	}
}

func TestExtractDedupeByTimestamp(t *testing.T) {
	e := newTestEngine()
	text := "Submit the report 12/25/2025. The deadline is 12/25/2025."
	deadlines := e.Extract(text)
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	if want := strings.Index(text, "12/25/2025"); deadlines[0].Position != want {
		t.Errorf("position = %d, want first occurrence at %d", deadlines[0].Position, want)
	}
}

func TestExtractOrderedByPosition(t *testing.T) {
	e := newTestEngine()
	deadlines := e.Extract("Submit the draft tomorrow and the final version is due 12/25/2025")
	if len(deadlines) < 2 {
		t.Fatalf("got %d deadlines, want at least 2: %+v", len(deadlines), deadlines)
	}
	for i := 1; i < len(deadlines); i++ {
		if deadlines[i].Position < deadlines[i-1].Position {
			t.Errorf("deadlines out of order: %+v", deadlines)
		}
	}
}

func TestExtractMessage(t *testing.T) {
	e := newTestEngine()
	msg := Message{
		SenderName: "Sara",
		Content:    "Dear Ahmed, please submit the report by EOD",
		TimeStamp:  "2025-03-12T09:00:00Z",
	}
	deadlines := e.ExtractMessage(msg)
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1", len(deadlines))
	}
	d := deadlines[0]
	if d.SenderName != "Sara" || d.TimeStamp != msg.TimeStamp || d.MessageContent != msg.Content {
		t.Errorf("message metadata not echoed: %+v", d)
	}
	if d.Recipient != "Ahmed" {
		t.Errorf("recipient = %q, want Ahmed", d.Recipient)
	}
}

func TestExtractRaw(t *testing.T) {
	e := newTestEngine()

	raw, _ := json.Marshal(Message{SenderName: "Sara", Content: "due Friday at 5 PM", TimeStamp: "t1"})
	deadlines := e.ExtractRaw(string(raw))
	if len(deadlines) != 1 || deadlines[0].SenderName != "Sara" {
		t.Errorf("JSON message not handled: %+v", deadlines)
	}

	// Non-JSON input degrades to plain-text extraction.
	deadlines = e.ExtractRaw("due Friday at 5 PM")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1", len(deadlines))
	}
	if deadlines[0].SenderName != "" {
		t.Errorf("plain text got sender %q", deadlines[0].SenderName)
	}
}

func TestExtractConversation(t *testing.T) {
	e := newTestEngine()
	messages := []Message{
		{SenderName: "Ali", Content: "Ahmed wants the final report", TimeStamp: "t1"},
		{SenderName: "Ali", Content: "please ahmed must send it tomorrow", TimeStamp: "t2"},
	}
	deadlines := e.ExtractConversation(messages)
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1: %+v", len(deadlines), deadlines)
	}
	d := deadlines[0]
	if d.MessageIndex == nil || *d.MessageIndex != 1 {
		t.Fatalf("message_index = %v, want 1", d.MessageIndex)
	}
	if d.Parsed != "2025-03-13" {
		t.Errorf("parsed = %q, want 2025-03-13", d.Parsed)
	}
	// The recipient comes from the prior message's name mention.
	if d.Recipient != "Ahmed" {
		t.Errorf("recipient = %q, want Ahmed", d.Recipient)
	}
}

func TestDeadlineJSONShape(t *testing.T) {
	e := newTestEngine()
	deadlines := e.Extract("submit the report 12/25/2025")
	if len(deadlines) != 1 {
		t.Fatalf("got %d deadlines, want 1", len(deadlines))
	}
	data, err := json.Marshal(deadlines[0])
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"date_text", "parsed_date", "confidence", "position"} {
		if _, ok := m[key]; !ok {
			t.Errorf("serialized deadline missing %q: %s", key, data)
		}
	}
	if _, ok := m["message_index"]; ok {
		t.Error("message_index present outside conversation mode")
	}
}
