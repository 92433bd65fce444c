// Package database owns the sqlite connection and schema lifecycle.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the sqlite database with foreign keys and a busy timeout.
// Connections are capped at one; sqlite serializes writers anyway and the
// cap keeps per-key read-modify-write updates atomic.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Now returns UTC time truncated to seconds, matching sqlite's default
// timestamp resolution.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
