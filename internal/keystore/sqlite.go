package keystore

import (
	"database/sql"
	"errors"
	"fmt"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStorage is a SecureStorage backed by a local SQLite database.
// The (service, account) primary key makes Set an atomic
// create-if-absent even across processes.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the key database at path.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening key database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening key database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS secure_keys (
		service    TEXT NOT NULL,
		account    TEXT NOT NULL,
		value      BLOB NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (service, account)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating key database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Get returns the stored value, or ErrNotFound.
func (s *SQLiteStorage) Get(service, account string) ([]byte, error) {
	row := s.db.QueryRow(
		"SELECT value FROM secure_keys WHERE service = ? AND account = ?",
		service, account,
	)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores value if absent. The INSERT OR IGNORE plus affected-row
// check keeps the existence test and the write in one statement.
func (s *SQLiteStorage) Set(service, account string, value []byte) error {
	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO secure_keys (service, account, value) VALUES (?, ?, ?)",
		service, account, value,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// Delete removes the value if present.
func (s *SQLiteStorage) Delete(service, account string) error {
	_, err := s.db.Exec(
		"DELETE FROM secure_keys WHERE service = ? AND account = ?",
		service, account,
	)
	return err
}
