// Package database opens the session-backing sqlite database and applies
// its embedded schema migrations.
package database

import (
	"database/sql"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens sqlite at path. An empty path (the default) opens an
// in-memory database that lives exactly as long as the process, which is
// what gives session state its reset-on-exit semantics; a real path opts
// into persistence.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, err
	}
	// sqlite: a single connection avoids SQLITE_BUSY and keeps the
	// in-memory database from vanishing between pool connections.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

func dsn(path string) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	if path == "" || path == ":memory:" {
		return "file::memory:?" + q.Encode()
	}
	q.Set("_busy_timeout", "5000")
	return "file:" + path + "?" + q.Encode()
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now returns UTC time truncated to seconds, matching sqlite's default
// timestamp resolution.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
