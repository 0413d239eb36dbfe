// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/fecha/internal/calendar"
	"github.com/javiermolinar/fecha/internal/history"
)

// SQLite implements history.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Record stores a committed date.
func (s *SQLite) Record(ctx context.Context, d calendar.Date) error {
	query := `INSERT INTO picks (picked_date, picked_at) VALUES (?, ?)`

	if _, err := s.db.ExecContext(ctx, query, d.String(), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording pick: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (s *SQLite) List(ctx context.Context, limit int) ([]history.Entry, error) {
	query := `SELECT id, picked_date, picked_at FROM picks ORDER BY picked_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var (
			e        history.Entry
			rawDate  string
			rawStamp string
		)
		if err := rows.Scan(&e.ID, &rawDate, &rawStamp); err != nil {
			return nil, fmt.Errorf("scanning pick: %w", err)
		}
		if e.Date, err = calendar.Parse(rawDate); err != nil {
			return nil, fmt.Errorf("scanning pick date: %w", err)
		}
		if e.PickedAt, err = time.Parse(time.RFC3339, rawStamp); err != nil {
			return nil, fmt.Errorf("scanning pick timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing picks: %w", err)
	}

	return entries, nil
}

// Clear removes all entries.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM picks`); err != nil {
		return fmt.Errorf("clearing picks: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
