package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore stores translations in a SQLite database
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the translation database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		source      text NOT NULL,
		target      text NOT NULL,
		text        text NOT NULL,
		translation text NOT NULL,
		created     integer NOT NULL,
		PRIMARY KEY (source, target, text)
	)`)
	return err
}

// Get looks up a translation for text in the given language pair
func (s *SQLiteStore) Get(source, target, text string) (string, bool, error) {
	var translation string
	err := s.db.QueryRow(
		`SELECT translation FROM translations WHERE source = ? AND target = ? AND text = ?`,
		source, target, text,
	).Scan(&translation)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return translation, true, nil
}

// Put stores a translation, replacing any earlier one for the same text
func (s *SQLiteStore) Put(source, target, text, translation string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO translations (source, target, text, translation, created) VALUES (?, ?, ?, ?, ?)`,
		source, target, text, translation, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache insert failed: %w", err)
	}
	return nil
}

// Count returns the number of stored translations
func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
