package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"csrwatch/internal/report"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages the run ledger backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one ledger entry.
type Run struct {
	ID         string
	Mode       string
	Window     string
	StartedAt  time.Time
	FinishedAt time.Time
	ErrorCount int
}

// Open initializes or connects to the ledger database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return tx.Commit()
}

// RecordRun persists a run with its error-status results in arrival order.
func (s *Store) RecordRun(ctx context.Context, run Run, results []report.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO runs (id, mode, window, started_at, finished_at, error_count) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Mode, run.Window,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.ErrorCount,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	seq := 0
	for _, r := range results {
		if !r.Status.IsError() {
			continue
		}
		seq++
		_, err = tx.ExecContext(ctx,
			"INSERT INTO run_results (run_id, seq, subject, status, detail) VALUES (?, ?, ?, ?, ?)",
			run.ID, seq, r.Subject, r.Status.String(), r.Detail,
		)
		if err != nil {
			return fmt.Errorf("insert run result: %w", err)
		}
	}
	return tx.Commit()
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, mode, window, started_at, finished_at, error_count FROM runs ORDER BY started_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished string
		if err := rows.Scan(&run.ID, &run.Mode, &run.Window, &started, &finished, &run.ErrorCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunResults returns the stored error results of one run in recorded order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]report.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT subject, status, detail FROM run_results WHERE run_id = ? ORDER BY seq",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run results: %w", err)
	}
	defer rows.Close()

	var results []report.Result
	for rows.Next() {
		var subject, status, detail string
		if err := rows.Scan(&subject, &status, &detail); err != nil {
			return nil, fmt.Errorf("scan run result: %w", err)
		}
		results = append(results, report.Result{
			Subject: subject,
			Status:  statusFromLabel(status),
			Detail:  detail,
		})
	}
	return results, rows.Err()
}

func statusFromLabel(label string) report.Status {
	for _, s := range []report.Status{
		report.StatusPresent,
		report.StatusMissingSource,
		report.StatusMissingDirectory,
		report.StatusCopiedOk,
		report.StatusCopyFailed,
		report.StatusMetadataIncomplete,
		report.StatusMissingTimeBucket,
		report.StatusConfigError,
	} {
		if s.String() == label {
			return s
		}
	}
	return report.StatusConfigError
}
