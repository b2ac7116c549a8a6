package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tatianab/pitch-puzzle/internal/models"
)

// SQLiteStore keeps progress records in a single key/value table, the
// JSON-encoded record keyed by "puzzle_<date>".
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS progress (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// OpenSQLite opens (creating if needed) the progress database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open progress db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init progress schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, date string) (models.Progress, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM progress WHERE key = ?`, Key(date)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Progress{}, ErrNotFound
	}
	if err != nil {
		return models.Progress{}, err
	}
	var rec models.Progress
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return models.Progress{}, fmt.Errorf("decode progress for %s: %w", date, err)
	}
	return rec, nil
}

func (s *SQLiteStore) Put(ctx context.Context, date string, rec models.Progress) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO progress (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, Key(date), string(value))
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM progress WHERE key = ?`, Key(date))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
