// Package extract implements deterministic deadline extraction from
// bilingual (English and Romanized Urdu) chat text.
//
// The pipeline identifies deadline expressions without an LLM or
// external API:
//   - Romanized-Urdu fragments are normalized to English
//   - an ordered multi-pattern scanner produces raw candidate matches
//   - overlapping matches collapse to the most specific span
//   - per-pattern date resolution turns matches into calendar timestamps
//   - a keyword window scorer estimates how deadline-like each date is
//
// Extraction is a pure function of its input plus the immutable lexicon;
// concurrent calls are safe without locking.
package extract

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/muddatlabs/muddat/internal/lexicon"
)

// Timestamp layouts for resolved deadlines. A date with no resolved
// time-of-day serializes date-only; the two forms are distinct precision
// levels, not interchangeable.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Inclusion thresholds for assembled deadlines.
const (
	// fallbackConfidence applies when no context keyword is found: an
	// unanchored date still counts as weak evidence of a deadline.
	fallbackConfidence = 0.45
	// minConfidence is the exclusive inclusion floor.
	minConfidence = 0.4
	// boostedConfidence is the floor applied to pattern kinds that
	// inherently carry strong temporal specificity.
	boostedConfidence = 0.85
)

// boostedKinds lists the pattern kinds whose confidence is raised to at
// least boostedConfidence regardless of keyword presence.
var boostedKinds = map[PatternKind]struct{}{
	KindDayTimeCombined:     {},
	KindDayTimeAmPm:         {},
	KindRelativeTimeCombine: {},
	KindRelativeTimeAmPm:    {},
	KindByContextTime:       {},
}

// Message is one structured chat message.
type Message struct {
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
	TimeStamp  string `json:"time_stamp"`
}

// Deadline is one extracted deadline record. Records are immutable once
// assembled and ordered by Position within their source message.
type Deadline struct {
	DateText   string  `json:"date_text"`
	Parsed     string  `json:"parsed_date"`
	Context    string  `json:"context,omitempty"`
	Confidence float64 `json:"confidence"`
	Position   int     `json:"position"`

	// When and HasTime back the Parsed string for callers that want the
	// timestamp rather than its serialized form.
	When    time.Time `json:"-"`
	HasTime bool      `json:"-"`

	// Message metadata, present when the deadline came from a structured
	// message rather than bare text.
	SenderName     string `json:"sender_name,omitempty"`
	TimeStamp      string `json:"time_stamp,omitempty"`
	MessageContent string `json:"message_content,omitempty"`
	Recipient      string `json:"recipient,omitempty"`

	// MessageIndex is the zero-based source message index in
	// conversation mode, nil otherwise.
	MessageIndex *int `json:"message_index,omitempty"`
}

// Engine runs the extraction pipeline against a fixed lexicon. It holds
// only immutable compiled state and is safe for concurrent use.
type Engine struct {
	lx               *lexicon.Lexicon
	phraseRules      []phraseRule
	keywordsByWeight []weightedKeyword
	now              func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Tests use this to pin
// "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine builds an extraction engine around the given lexicon.
func NewEngine(lx *lexicon.Lexicon, opts ...Option) *Engine {
	e := &Engine{
		lx:               lx,
		phraseRules:      compilePhraseRules(lx.PhrasesByLength, lx.UrduToEnglish),
		keywordsByWeight: sortKeywordsByWeight(lx.DeadlineKeywords),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans text and returns its deadline records, ordered by
// position and deduplicated by resolved timestamp. Empty or
// unresolvable input yields an empty slice, never an error: a match that
// fails to resolve is dropped without affecting its siblings.
func (e *Engine) Extract(text string) []Deadline {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	now := e.now()
	normalized := e.Normalize(text)
	matches := filterOverlaps(scan(normalized))

	var deadlines []Deadline
	for _, m := range matches {
		when, hasTime, ok := e.resolveAbsolute(m, now)
		if !ok {
			when, hasTime, ok = e.resolveRelative(m.Text, now)
		}
		if !ok {
			continue
		}

		// Known caveat: the scanner runs over normalized text but the
		// context window is taken from the caller's original text using
		// the normalized-text span. The two agree exactly whenever
		// normalization preserves length before the match, which holds
		// for pure-English input and approximately otherwise.
		keyword, weight := e.scoreContext(text, m.Start, m.Len())

		confidence := fallbackConfidence
		if keyword != "" {
			confidence = weight
		}
		if _, boosted := boostedKinds[m.Kind]; boosted && confidence < boostedConfidence {
			confidence = boostedConfidence
		}
		if confidence <= minConfidence {
			continue
		}

		parsed := when.Format(dateLayout)
		if hasTime {
			parsed = when.Format(dateTimeLayout)
		}
		deadlines = append(deadlines, Deadline{
			DateText:   m.Text,
			Parsed:     parsed,
			Context:    keyword,
			Confidence: confidence,
			Position:   m.Start,
			When:       when,
			HasTime:    hasTime,
		})
	}

	sortByPosition(deadlines)
	return dedupeByTimestamp(deadlines)
}

// ExtractMessage extracts deadlines from a structured message, echoing
// the sender, timestamp, and content on every record and attaching a
// recipient guess.
func (e *Engine) ExtractMessage(msg Message) []Deadline {
	deadlines := e.Extract(msg.Content)
	if len(deadlines) == 0 {
		return deadlines
	}
	recipient := e.DetectRecipient(msg.Content, msg.SenderName, nil)
	for i := range deadlines {
		deadlines[i].SenderName = msg.SenderName
		deadlines[i].TimeStamp = msg.TimeStamp
		deadlines[i].MessageContent = msg.Content
		deadlines[i].Recipient = recipient
	}
	return deadlines
}

// ExtractRaw accepts either a JSON-encoded message or bare text.
// Anything that does not decode to a message with content degrades to
// plain-text extraction; malformed input is never rejected outright.
func (e *Engine) ExtractRaw(raw string) []Deadline {
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err == nil && strings.TrimSpace(msg.Content) != "" {
		return e.ExtractMessage(msg)
	}
	return e.Extract(raw)
}

// ExtractConversation runs the single-message pipeline over an ordered
// conversation, tagging each deadline with its source message index.
// The trailing window of prior message contents feeds recipient
// detection.
func (e *Engine) ExtractConversation(messages []Message) []Deadline {
	var all []Deadline
	var history []string
	for i, msg := range messages {
		deadlines := e.Extract(msg.Content)
		if len(deadlines) > 0 {
			recipient := e.DetectRecipient(msg.Content, msg.SenderName, history)
			idx := i
			for j := range deadlines {
				deadlines[j].SenderName = msg.SenderName
				deadlines[j].TimeStamp = msg.TimeStamp
				deadlines[j].MessageContent = msg.Content
				deadlines[j].Recipient = recipient
				deadlines[j].MessageIndex = &idx
			}
			all = append(all, deadlines...)
		}
		history = append(history, msg.Content)
	}
	return all
}

// sortByPosition orders deadlines by original-text offset, keeping scan
// order for equal positions.
func sortByPosition(deadlines []Deadline) {
	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].Position < deadlines[j].Position
	})
}

// dedupeByTimestamp keeps the earliest-positioned record per distinct
// resolved timestamp string. Input must already be position-sorted.
func dedupeByTimestamp(deadlines []Deadline) []Deadline {
	if len(deadlines) == 0 {
		return deadlines
	}
	seen := make(map[string]struct{}, len(deadlines))
	unique := deadlines[:0]
	for _, d := range deadlines {
		if _, dup := seen[d.Parsed]; dup {
			continue
		}
		seen[d.Parsed] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}
