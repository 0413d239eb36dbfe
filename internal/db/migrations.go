package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS picks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			picked_date DATE NOT NULL,
			picked_at   DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_picks_picked_at ON picks(picked_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating picks table: %w", err)
	}

	return nil
}
