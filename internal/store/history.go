// Package store keeps a local SQLite history of solved answers.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"aoc2024/internal/puzzle"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Latest when no run was recorded.
var ErrNotFound = errors.New("no recorded answer")

// Entry is one recorded run of a puzzle part.
type Entry struct {
	ID        string
	Day       int
	Part      puzzle.Part
	Answer    string
	Duration  time.Duration
	Err       string
	CreatedAt time.Time
}

// OK reports whether the run produced an answer.
func (e Entry) OK() bool { return e.Err == "" }

// FromResult converts a runner result into a history entry.
func FromResult(r puzzle.Result) Entry {
	e := Entry{
		Day:      r.Job.Day,
		Part:     r.Job.Part,
		Duration: r.Duration,
	}
	if r.Answer != nil {
		e.Answer = r.Answer.String()
	}
	if r.Err != nil {
		e.Err = r.Err.Error()
	}
	return e
}

// History manages the answer history database.
type History struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open creates or opens the history database at path.
func Open(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	h := &History{db: db, dbPath: path}
	if err := h.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return h, nil
}

// Close closes the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// Path returns the database file path.
func (h *History) Path() string {
	return h.dbPath
}

func (h *History) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		answer TEXT NOT NULL DEFAULT '',
		duration_ns INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part, created_at);
	`
	_, err := h.db.Exec(schema)
	return err
}

// Record stores e, filling in ID and CreatedAt when empty.
func (h *History) Record(ctx context.Context, e Entry) (Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := h.db.ExecContext(ctx, `
		INSERT INTO runs (id, day, part, answer, duration_ns, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Day, int(e.Part), e.Answer, e.Duration.Nanoseconds(), e.Err, e.CreatedAt.UnixNano())
	if err != nil {
		return e, fmt.Errorf("failed to record run: %w", err)
	}
	return e, nil
}

// List returns recorded runs, newest first. day 0 lists every day.
func (h *History) List(ctx context.Context, day int) ([]Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	query := `SELECT id, day, part, answer, duration_ns, error, created_at FROM runs`
	var args []any
	if day != 0 {
		query += ` WHERE day = ?`
		args = append(args, day)
	}
	query += ` ORDER BY created_at DESC, day, part`

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Latest returns the most recent successful answer for a day and part.
func (h *History) Latest(ctx context.Context, day int, part puzzle.Part) (Entry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	row := h.db.QueryRowContext(ctx, `
		SELECT id, day, part, answer, duration_ns, error, created_at FROM runs
		WHERE day = ? AND part = ? AND error = ''
		ORDER BY created_at DESC LIMIT 1
	`, day, int(part))
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("day %d part %d: %w", day, part, ErrNotFound)
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e       Entry
		part    int
		nanos   int64
		created int64
	)
	if err := s.Scan(&e.ID, &e.Day, &part, &e.Answer, &nanos, &e.Err, &created); err != nil {
		return Entry{}, err
	}
	e.Part = puzzle.Part(part)
	e.Duration = time.Duration(nanos)
	e.CreatedAt = time.Unix(0, created)
	return e, nil
}
