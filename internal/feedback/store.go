// Package feedback records corrected recipient labels reported by
// callers. The store is advisory: extraction never reads it back, it
// exists so corrections can be inspected offline.
//
// Records live in an in-process map and append-only history for the
// process lifetime, with optional single-file SQLite persistence so a
// long-running service keeps corrections across restarts. The store
// never evicts; capping or rotating is the operator's concern.
package feedback

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Entry is one recorded correction.
type Entry struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Corrected string    `json:"corrected_recipient"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds recipient corrections keyed by (sender, content). All
// methods are safe for concurrent use; the mutex guards the only mutable
// shared state in the engine.
type Store struct {
	mu      sync.Mutex
	byKey   map[string]string
	history []Entry
	db      *sql.DB
}

// New returns an in-memory store with no persistence.
func New() *Store {
	return &Store{byKey: make(map[string]string)}
}

// Open returns a store backed by baseDir/feedback.db, creating the
// database if needed and loading previously recorded corrections.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating feedback directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, "feedback.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening feedback db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		sender TEXT NOT NULL,
		content TEXT NOT NULL,
		corrected_recipient TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating feedback schema: %w", err)
	}

	s := &Store{byKey: make(map[string]string), db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(
		`SELECT id, sender, content, corrected_recipient, created_at
		 FROM feedback ORDER BY id ASC`)
	if err != nil {
		return fmt.Errorf("loading feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Sender, &e.Content, &e.Corrected, &e.CreatedAt); err != nil {
			return fmt.Errorf("scanning feedback row: %w", err)
		}
		s.byKey[key(e.Sender, e.Content)] = e.Corrected
		s.history = append(s.history, e)
	}
	return rows.Err()
}

// Record stores a corrected recipient for a message. The latest
// correction for a (sender, content) pair wins; history keeps every
// report.
func (s *Store) Record(ctx context.Context, sender, content, corrected string) error {
	now := time.Now().UTC()
	e := Entry{
		ID:        newID(now),
		Sender:    sender,
		Content:   content,
		Corrected: corrected,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO feedback (id, sender, content, corrected_recipient, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.Sender, e.Content, e.Corrected, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting feedback: %w", err)
		}
	}

	s.byKey[key(sender, content)] = corrected
	s.history = append(s.history, e)
	return nil
}

// Corrected returns the latest correction recorded for a message, if
// any.
func (s *Store) Corrected(sender, content string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byKey[key(sender, content)]
	return v, ok
}

// History returns a copy of every recorded correction in insertion
// order.
func (s *Store) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Len reports the number of recorded corrections.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Close releases the backing database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func key(sender, content string) string {
	return sender + ":" + content
}

func newID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		// Entropy failure is not recoverable in any useful way here;
		// fall back to a timestamp-only ULID.
		return ulid.MustNew(ulid.Timestamp(now), zeroReader{}).String()
	}
	return id.String()
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}
