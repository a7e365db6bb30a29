// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed research outcomes in a SQLite database
// and answers the dashboard queries over them: recent research and aggregate
// statistics. History is a caller-side concern; the aggregation engine never
// reads or writes it.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/orisong/pkg/types"
)

// Store manages the research history database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Path and creates
// the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "research-history.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			isrc TEXT,
			success INTEGER NOT NULL,
			confidence INTEGER NOT NULL,
			result_count INTEGER NOT NULL,
			error TEXT,
			response TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Entry is one recorded search.
type Entry struct {
	ID          int64                   `json:"id" yaml:"id"`
	Title       string                  `json:"title" yaml:"title"`
	Artist      string                  `json:"artist" yaml:"artist"`
	ISRC        string                  `json:"isrc,omitempty" yaml:"isrc,omitempty"`
	Success     bool                    `json:"success" yaml:"success"`
	Confidence  int                     `json:"confidence" yaml:"confidence"`
	ResultCount int                     `json:"result_count" yaml:"result_count"`
	Error       string                  `json:"error,omitempty" yaml:"error,omitempty"`
	Response    types.AggregateResponse `json:"response" yaml:"-"`
	CreatedAt   time.Time               `json:"created_at" yaml:"created_at"`
}

// Record appends a completed search to the history and returns its row ID.
func (s *Store) Record(ctx context.Context, resp types.AggregateResponse) (int64, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return 0, fmt.Errorf("encoding response: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (title, artist, isrc, success, confidence, result_count, error, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resp.SearchParams.Title,
		resp.SearchParams.Artist,
		resp.SearchParams.ISRC,
		resp.Success,
		resp.Confidence,
		resp.ResultCount(),
		resp.Error,
		string(payload),
		resp.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting search: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent entries, newest first. A non-positive
// limit uses the configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, artist, isrc, success, confidence, result_count, error, response, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload, createdAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.Artist, &e.ISRC, &e.Success,
			&e.Confidence, &e.ResultCount, &e.Error, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Response); err != nil {
			return nil, fmt.Errorf("decoding stored response %d: %w", e.ID, err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats summarizes the history for the dashboard.
type Stats struct {
	Total             int       `json:"total" yaml:"total"`
	Succeeded         int       `json:"succeeded" yaml:"succeeded"`
	AverageConfidence float64   `json:"average_confidence" yaml:"average_confidence"`
	LastSearch        time.Time `json:"last_search" yaml:"last_search"`
}

// Stats computes aggregate statistics over the whole history. The average
// is taken over successful searches only.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	var last sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(success), 0),
		        AVG(CASE WHEN success THEN confidence END),
		        MAX(created_at)
		 FROM searches`).Scan(&st.Total, &st.Succeeded, &avg, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("querying stats: %w", err)
	}

	if avg.Valid {
		st.AverageConfidence = avg.Float64
	}
	if last.Valid {
		if t, parseErr := time.Parse(time.RFC3339, last.String); parseErr == nil {
			st.LastSearch = t
		}
	}
	return st, nil
}
