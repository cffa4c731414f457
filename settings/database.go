package settings

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/where"
	_ "modernc.org/sqlite"
)

// Structured payloads too large for the settings file live in a small
// key-value database: (id TEXT PRIMARY KEY, data TEXT) where data is JSON.
// The companion ".value" suffix keys them to their primary setting.

var (
	databaseOnce  sync.Once
	database      *sql.DB
	databaseError error
)

func openDatabase() (*sql.DB, error) {
	databaseOnce.Do(func() {
		database, databaseError = sql.Open("sqlite", where.Database())
		if databaseError != nil {
			return
		}
		_, databaseError = database.Exec(
			`CREATE TABLE IF NOT EXISTS settings (id TEXT PRIMARY KEY, data TEXT)`)
	})
	return database, databaseError
}

// CloseDatabase releases the database handle. Reopened lazily on next use.
func CloseDatabase() {
	if database != nil {
		_ = database.Close()
	}
	database = nil
	databaseOnce = sync.Once{}
	databaseError = nil
}

// SetData stores a structured payload in the database under the setting's
// ".value" companion and enables the primary boolean gate atomically.
func SetData(id string, value any) error {
	db, err := openDatabase()
	if err != nil {
		return fmt.Errorf("open settings database: %w", err)
	}

	encoded := convert.JSONEncode(value)
	if _, err := db.Exec(
		`INSERT INTO settings (id, data) VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		id+key.SuffixValue, encoded); err != nil {
		return fmt.Errorf("write setting data %s: %w", id, err)
	}

	return Set(id, true)
}

// GetData reads a structured payload. The payload is returned only while
// the primary boolean gate is set: the host's "reset to default" clears the
// boolean, logically disabling the payload without destroying it.
func GetData(id string) any {
	if !GetBoolean(id) {
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return nil
	}

	var data string
	err = db.QueryRow(`SELECT data FROM settings WHERE id = ?`, id+key.SuffixValue).Scan(&data)
	if err != nil {
		return nil
	}
	return convert.JSONDecode(data)
}

// deleteData removes a payload row. Missing rows are not an error.
func deleteData(id string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	_, err = db.Exec(`DELETE FROM settings WHERE id = ?`, id+key.SuffixValue)
	return err
}

// DataIdentifiers lists every identifier currently holding a payload.
func DataIdentifiers() ([]string, error) {
	db, err := openDatabase()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
