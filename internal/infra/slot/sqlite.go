package slot

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// ─── SQLite Backend ─────────────────────────────────────────────────────────

// DB wraps the SQLite database holding every cart slot.
type DB struct {
	db *sql.DB
}

// Migrations returns the schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS cart_slots (
			slot_key   TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

// OpenDB opens (or creates) the slot database and applies migrations.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open slot db: %w", err)
	}
	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate slot db: %w", err)
		}
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Slot returns the slot stored under the given key.
func (d *DB) Slot(key string) *SQLiteSlot {
	return &SQLiteSlot{db: d.db, key: key}
}

// SQLiteSlot stores one cart as a row in the cart_slots table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// Load reads and decodes the slot row. A missing row and a corrupt
// payload both yield an empty list.
func (s *SQLiteSlot) Load() []domain.LineItem {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM cart_slots WHERE slot_key = ?
	`, s.key).Scan(&payload)
	if err != nil {
		return nil
	}
	return decode([]byte(payload))
}

// Save upserts the full item list, overwriting any prior payload.
func (s *SQLiteSlot) Save(items []domain.LineItem) error {
	payload, err := encode(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO cart_slots (slot_key, payload, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(slot_key) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = datetime('now')
	`, s.key, string(payload))
	return err
}
