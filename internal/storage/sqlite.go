// Package storage provides SQLite-based persistence for the maze generation
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded maze generation.
type Run struct {
	ID         string
	Seed       int64
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	WallWidth  int
	WallHeight int
	Passages   int
	Output     string
	DurationMs int64
	CreatedAt  time.Time
}

// Summary contains aggregated statistics over all recorded runs.
type Summary struct {
	Runs       int
	TotalCells int64
	LargestW   int
	LargestH   int
	LastRun    time.Time
}

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			cell_width INTEGER NOT NULL,
			cell_height INTEGER NOT NULL,
			wall_width INTEGER NOT NULL,
			wall_height INTEGER NOT NULL,
			passages INTEGER NOT NULL,
			output TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a generation run. An empty ID is replaced with a new UUID.
// Returns the ID of the stored record.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, seed, width, height, cell_width, cell_height, wall_width, wall_height, passages, output, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Seed,
		run.Width,
		run.Height,
		run.CellWidth,
		run.CellHeight,
		run.WallWidth,
		run.WallHeight,
		run.Passages,
		run.Output,
		run.DurationMs,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, seed, width, height, cell_width, cell_height, wall_width, wall_height,
		        passages, output, duration_ms, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.CellWidth,
		&r.CellHeight,
		&r.WallWidth,
		&r.WallHeight,
		&r.Passages,
		&r.Output,
		&r.DurationMs,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil, nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE id = ?`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes all recorded runs and returns how many were removed.
func (s *Store) ClearRuns() (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// Summarize returns aggregated statistics over all runs.
func (s *Store) Summarize() (*Summary, error) {
	sum := &Summary{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(width * height), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.TotalCells)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}
	if sum.Runs == 0 {
		return sum, nil
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT width, height FROM runs ORDER BY width * height DESC LIMIT 1`,
	).Scan(&sum.LargestW, &sum.LargestH)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot find largest run: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	sum.LastRun = parseTime(lastRun)

	return sum, nil
}
