package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one journalled display change
type Entry struct {
	ID     int64
	Deck   string
	Index  int
	Offset int
	At     time.Time
}

// Store journals which page was on screen and when
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database at path
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	// The journal is written from one goroutine; a single connection keeps
	// in-memory databases shared.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure history: %w", err)
		}
	}
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS displays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deck TEXT NOT NULL,
			item_index INTEGER NOT NULL,
			scroll_offset INTEGER NOT NULL,
			shown_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_displays_deck ON displays(deck, shown_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := s.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("failed to migrate history: %w", err)
		}
	}
	return nil
}

// Record appends a display change
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO displays (deck, item_index, scroll_offset, shown_at_unixms) VALUES (?, ?, ?, ?)`,
		e.Deck, e.Index, e.Offset, e.At.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record display: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. An empty deck matches all decks.
func (s *Store) Recent(ctx context.Context, deck string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, deck, item_index, scroll_offset, shown_at_unixms FROM displays
		 WHERE ? = '' OR deck = ?
		 ORDER BY id DESC LIMIT ?`,
		deck, deck, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e  Entry
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Deck, &e.Index, &e.Offset, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		e.At = time.UnixMilli(ms)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
