// Package ledger records pipeline runs in SQLite for later inspection.
// It belongs to the presentation tooling; the numeric core never uses it.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id        TEXT PRIMARY KEY,
	trigger_type  TEXT NOT NULL,
	scenario_json TEXT NOT NULL,
	result_json   TEXT,
	cipher_score  REAL NOT NULL,
	quality       REAL NOT NULL,
	decision      TEXT NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at);
`

// #endregion schema

// #region store-struct
// Store manages the run ledger.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region record
// Record inserts a run. A missing RunID or CreatedAt is filled in; the stored
// row is returned.
func (s *Store) Record(run Run) (Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, trigger_type, scenario_json, result_json, cipher_score, quality, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.TriggerType,
		run.ScenarioJSON,
		nullIfEmpty(run.ResultJSON),
		run.CipherScore,
		run.Quality,
		run.Decision,
		nullIfEmpty(run.Reason),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// #endregion record

// #region get
const selectCols = `SELECT run_id, trigger_type, scenario_json, result_json, cipher_score, quality, decision, reason, created_at FROM runs`

// Get retrieves a run by ID.
func (s *Store) Get(id string) (Run, error) {
	run, err := scanRun(s.db.QueryRow(selectCols+` WHERE run_id = ?`, id))
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(selectCols+` ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// #endregion get

// #region helpers
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var resultJSON, reason sql.NullString
	var createdStr string

	err := sc.Scan(&run.RunID, &run.TriggerType, &run.ScenarioJSON, &resultJSON,
		&run.CipherScore, &run.Quality, &run.Decision, &reason, &createdStr)
	if err != nil {
		return Run{}, err
	}
	if resultJSON.Valid {
		run.ResultJSON = resultJSON.String
	}
	if reason.Valid {
		run.Reason = reason.String
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return run, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
