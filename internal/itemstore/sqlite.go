package itemstore

import (
	"database/sql"
	"fmt"

	"gopkg.in/yaml.v3"

	_ "modernc.org/sqlite"

	"github.com/funvibe/gocsl/internal/value"
)

// SQLiteStore is a larger-library-scale Item Data Provider: each
// record's variables are kept YAML-encoded in a single column (the
// core's variable set is open-ended, so a fixed relational schema
// would either truncate it or need a migration per new CSL variable;
// a blob column sidesteps that without losing queryability by id).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if necessary) a SQLite-backed item
// store at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("itemstore: open sqlite: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS items (
		id   TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		body TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("itemstore: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Seed inserts or replaces every record by id.
func (s *SQLiteStore) Seed(records []Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO items (id, type, body) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, rec := range records {
		body, err := yaml.Marshal(rec)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("itemstore: encode record %s: %w", rec.ID, err)
		}
		if _, err := stmt.Exec(rec.ID, rec.Type, string(body)); err != nil {
			tx.Rollback()
			return fmt.Errorf("itemstore: insert record %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// Get loads one item by id.
func (s *SQLiteStore) Get(id string) (value.Item, bool) {
	row := s.db.QueryRow(`SELECT body FROM items WHERE id = ?`, id)
	var body string
	if err := row.Scan(&body); err != nil {
		return nil, false
	}
	var rec Record
	if err := yaml.Unmarshal([]byte(body), &rec); err != nil {
		return nil, false
	}
	return NewItem(rec), true
}

// All loads every item, ordered by id.
func (s *SQLiteStore) All() ([]value.Item, error) {
	rows, err := s.db.Query(`SELECT body FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []value.Item
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var rec Record
		if err := yaml.Unmarshal([]byte(body), &rec); err != nil {
			return nil, err
		}
		out = append(out, NewItem(rec))
	}
	return out, rows.Err()
}
