package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"matsheets/internal"
	"matsheets/internal/util"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS stack_refs (
  key TEXT PRIMARY KEY,
  display TEXT NOT NULL,
  stackSize INTEGER NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// UpsertStackRef stores or replaces the stack-size override for one item.
// Items are keyed by normalized identity so "Oak Log" and "oak_log" share one
// entry; the display form of the latest write wins.
func (d *DB) UpsertStackRef(display string, stackSize int) error {
	key := util.NormalizeHeader(display)
	if key == "" {
		return errors.New("empty item name")
	}
	_, err := d.conn.Exec(`
INSERT INTO stack_refs (key, display, stackSize, updatedAt)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET
  display = excluded.display,
  stackSize = excluded.stackSize,
  updatedAt = CURRENT_TIMESTAMP
`, key, display, stackSize)
	return err
}

func (d *DB) ListStackRefs() ([]internal.StackRef, error) {
	rows, err := d.conn.Query(`SELECT key, display, stackSize FROM stack_refs ORDER BY display COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []internal.StackRef{}
	for rows.Next() {
		var ref internal.StackRef
		if err := rows.Scan(&ref.Key, &ref.Display, &ref.StackSize); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

// DeleteStackRef removes an override, reporting whether it existed.
func (d *DB) DeleteStackRef(display string) (bool, error) {
	res, err := d.conn.Exec(`DELETE FROM stack_refs WHERE key = ?`, util.NormalizeHeader(display))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}
