package platzhalter

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no image is stored under a fingerprint.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database used as a key-value store for encoded
// images. Keys are decimal fingerprint strings, values raw PNG bytes with no
// envelope or metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path, ensures the data
// directory exists, and runs schema setup.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows readers to proceed while a render stores its result, the
	// busy timeout makes racing writers wait instead of failing with
	// SQLITE_BUSY, and synchronous=NORMAL avoids an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS images (
    fingerprint TEXT PRIMARY KEY,
    data BLOB NOT NULL
);
`)
	return err
}

// GetImage returns the encoded image stored under key, or ErrNotFound.
func (s *Store) GetImage(key string) ([]byte, error) {
	var data []byte
	if err := s.db.QueryRow(`SELECT data FROM images WHERE fingerprint = ?`, key).Scan(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// PutImage stores encoded image bytes under key. Writers racing on the same
// key both succeed and the row holds the last write; every candidate value
// is a valid image for that key, so the race only wastes work.
func (s *Store) PutImage(key string, data []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO images (fingerprint, data) VALUES (?, ?)`, key, data)
	return err
}
