// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// RunEntry summarizes a recorded run for listings.
type RunEntry struct {
	ID        int64
	Seed      int64
	Ticks     uint64
	Score     int
	Flaps     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			params TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_activations (
			run_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun stores a recording and returns its ID.
func (s *Store) SaveRun(rec replay.Recording) (int64, error) {
	params, err := config.Marshal(config.FromParams(rec.Params))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode params: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	result, err := tx.Exec(
		"INSERT INTO runs (seed, params, ticks, score, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.Seed, string(params), int64(rec.Ticks), rec.Score, createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_activations (run_id, seq, tick) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare activations: %w", err)
	}
	defer stmt.Close()

	for i, tick := range rec.Activations {
		if _, err := stmt.Exec(id, i, int64(tick)); err != nil {
			return 0, fmt.Errorf("storage: cannot save activation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Run loads a full recording by ID.
func (s *Store) Run(id int64) (replay.Recording, error) {
	var (
		rec       replay.Recording
		params    string
		ticks     int64
		createdAt any
	)
	err := s.db.QueryRow(
		"SELECT id, seed, params, ticks, score, created_at FROM runs WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Seed, &params, &ticks, &rec.Score, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query run: %w", err)
	}
	rec.Ticks = uint64(ticks)
	rec.CreatedAt = parseTime(createdAt)

	cfg, err := config.Parse([]byte(params))
	if err != nil {
		return rec, fmt.Errorf("storage: cannot decode params of run %d: %w", id, err)
	}
	rec.Params = cfg.Params()

	rows, err := s.db.Query(
		"SELECT tick FROM run_activations WHERE run_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query activations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tick int64
		if err := rows.Scan(&tick); err != nil {
			return rec, fmt.Errorf("storage: cannot scan activation: %w", err)
		}
		rec.Activations = append(rec.Activations, uint64(tick))
	}
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// RecentRuns lists the newest runs first. A non-positive limit lists every run.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.ticks, r.score, r.created_at,
		        (SELECT COUNT(*) FROM run_activations a WHERE a.run_id = r.id)
		 FROM runs r
		 ORDER BY r.created_at DESC, r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var (
			e         RunEntry
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.Seed, &ticks, &e.Score, &createdAt, &e.Flaps); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteRun removes a run and its activations.
func (s *Store) DeleteRun(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	result, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if _, err := tx.Exec("DELETE FROM run_activations WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete activations: %w", err)
	}
	return tx.Commit()
}

// Prune keeps only the newest `keep` runs and returns how many were removed.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	result, err := tx.Exec(
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune runs: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned runs: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM run_activations WHERE run_id NOT IN (SELECT id FROM runs)"); err != nil {
		return 0, fmt.Errorf("storage: cannot prune activations: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit prune: %w", err)
	}
	return removed, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
