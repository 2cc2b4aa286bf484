// Package store archives emitted valuation reports in a local SQLite
// database. The engine itself is stateless; this archive is a
// caller-side convenience behind the appraise --save flag and the runs
// command.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/konkred/valuation-cli/internal/valuation"
)

// Store persists valuation reports keyed by watermark.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database at the given path and configures WAL
// mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS reports (
	watermark    TEXT PRIMARY KEY,
	method       TEXT NOT NULL,
	prompt_title TEXT,
	report       TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reports_method ON reports(method);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, migration); err != nil {
		return eris.Wrap(err, "store: migrate")
	}
	return nil
}

// SaveReport archives one report as JSON, keyed by its watermark.
func (s *Store) SaveReport(ctx context.Context, rep *valuation.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return eris.Wrap(err, "store: marshal report")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (watermark, method, prompt_title, report) VALUES (?, ?, ?, ?)`,
		rep.Watermark, string(rep.Method), rep.PromptTitle, string(payload),
	)
	if err != nil {
		return eris.Wrapf(err, "store: save report %s", rep.Watermark)
	}
	return nil
}

// Entry is one archived report's listing row.
type Entry struct {
	Watermark   string    `json:"watermark"`
	Method      string    `json:"method"`
	PromptTitle string    `json:"prompt_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListReports returns archive entries, newest first. limit <= 0 means
// no limit.
func (s *Store) ListReports(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT watermark, method, COALESCE(prompt_title, ''), created_at
		FROM reports ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "store: list reports")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Watermark, &e.Method, &e.PromptTitle, &e.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "store: scan report row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "store: iterate reports")
	}
	return entries, nil
}

// GetReport loads one archived report by watermark.
func (s *Store) GetReport(ctx context.Context, watermark string) (*valuation.Report, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT report FROM reports WHERE watermark = ?`, watermark,
	).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, eris.Errorf("store: no report with watermark %s", watermark)
		}
		return nil, eris.Wrapf(err, "store: get report %s", watermark)
	}

	var rep valuation.Report
	if err := json.Unmarshal([]byte(payload), &rep); err != nil {
		return nil, eris.Wrapf(err, "store: decode report %s", watermark)
	}
	return &rep, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
