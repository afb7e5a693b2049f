// Package history persists benchmark runs and compares them over time.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run is one recorded benchmark invocation with its aggregate statistics
// in floating-point nanoseconds.
type Run struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label,omitempty"`
	Command   string    `json:"command"`
	Rounds    int       `json:"rounds"`
	MeanNs    float64   `json:"mean_ns"`
	MinNs     float64   `json:"min_ns"`
	MaxNs     float64   `json:"max_ns"`
	StdNs     float64   `json:"std_ns"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the methods for persisting benchmark runs.
type Store interface {
	Close() error
	Save(run Run) (int64, error)
	LoadRecent(limit int) ([]Run, error)
	LoadByLabel(label string) (*Run, error)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the history database at path
// and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL DEFAULT '',
		command TEXT NOT NULL,
		rounds INTEGER NOT NULL,
		mean_ns REAL NOT NULL,
		min_ns REAL NOT NULL,
		max_ns REAL NOT NULL,
		std_ns REAL NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save records a run and returns its assigned id.
func (s *SQLiteStore) Save(run Run) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (label, command, rounds, mean_ns, min_ns, max_ns, std_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Label, run.Command, run.Rounds, run.MeanNs, run.MinNs, run.MaxNs, run.StdNs, run.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}
	return res.LastInsertId()
}

// LoadRecent returns the most recent runs, newest first.
func (s *SQLiteStore) LoadRecent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, command, rounds, mean_ns, min_ns, max_ns, std_ns, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRuns(rows)
}

// LoadByLabel returns the most recent run recorded under label, or nil if
// none exists.
func (s *SQLiteStore) LoadByLabel(label string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, command, rounds, mean_ns, min_ns, max_ns, std_ns, created_at
		 FROM runs WHERE label = ? ORDER BY id DESC LIMIT 1`, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Label, &r.Command, &r.Rounds,
			&r.MeanNs, &r.MinNs, &r.MaxNs, &r.StdNs, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
