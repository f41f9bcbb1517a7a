// Package history persists completed audit runs to a local sqlite database
// so past scores can be reviewed without a backend round trip.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/s4cindia/ninja-cli/pkg/interfaces"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no entry exists for a job id.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one recorded audit run.
type Entry struct {
	JobID      string
	DocumentID string
	Filename   string
	Format     interfaces.DocumentFormat
	Standard   string
	Score      int
	Rating     interfaces.Rating
	Counts     interfaces.IssueSeverityCounts
	CreatedAt  time.Time
}

// Store is a sqlite-backed audit history.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database location (~/.ninja/history.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("history: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".ninja", "history.db"), nil
}

// Open opens (creating if needed) the history database at path and runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: creating %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS audits (
		job_id TEXT PRIMARY KEY,
		document_id TEXT,
		filename TEXT,
		format TEXT,
		standard TEXT,
		score INTEGER,
		rating TEXT,
		critical INTEGER,
		serious INTEGER,
		moderate INTEGER,
		minor INTEGER,
		created_at DATETIME
	);`
	if _, err := s.db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("history: migrating schema: %w", err)
	}
	return nil
}

// Save records an audit run, replacing any previous entry for the same job.
func (s *Store) Save(ctx context.Context, e *Entry) error {
	query := `INSERT OR REPLACE INTO audits (
		job_id, document_id, filename, format, standard, score, rating,
		critical, serious, moderate, minor, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, query,
		e.JobID, e.DocumentID, e.Filename, string(e.Format), e.Standard,
		e.Score, string(e.Rating),
		e.Counts.Critical, e.Counts.Serious, e.Counts.Moderate, e.Counts.Minor,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("history: saving entry for job %s: %w", e.JobID, err)
	}
	return nil
}

const selectColumns = `job_id, document_id, filename, format, standard, score, rating,
	critical, serious, moderate, minor, created_at`

// List returns the most recent entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + selectColumns + ` FROM audits ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("history: listing entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: listing entries: %w", err)
	}
	return entries, nil
}

// Get returns the entry for a job id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, jobID string) (*Entry, error) {
	query := `SELECT ` + selectColumns + ` FROM audits WHERE job_id = ?`
	row := s.db.QueryRowContext(ctx, query, jobID)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var format, rating, createdAt string

	err := row.Scan(
		&e.JobID, &e.DocumentID, &e.Filename, &format, &e.Standard,
		&e.Score, &rating,
		&e.Counts.Critical, &e.Counts.Serious, &e.Counts.Moderate, &e.Counts.Minor,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("history: scanning entry: %w", err)
	}

	e.Format = interfaces.DocumentFormat(format)
	e.Rating = interfaces.Rating(rating)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = ts
	}
	return &e, nil
}
