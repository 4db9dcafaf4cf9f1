// Package sqlite stores ledger rows in a local SQLite file using the pure Go
// modernc driver.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"farmtwin/internal/infra/ledger/sqlstore"
)

const (
	driverName  = "sqlite"
	defaultPath = "farmtwin-ledger.db"
	pragmas     = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
)

const ddl = `CREATE TABLE IF NOT EXISTS ledger_rows (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at TEXT NOT NULL,
	zone TEXT NOT NULL,
	scope TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	hens TEXT NOT NULL,
	cocks TEXT NOT NULL,
	water TEXT NOT NULL,
	feed TEXT NOT NULL,
	task TEXT NOT NULL,
	notes TEXT NOT NULL
)`

// Ledger is a sqlstore.Store bound to a database file.
type Ledger struct {
	*sqlstore.Store
	path string
}

// Open creates or opens the ledger at path, creating parent directories.
func Open(ctx context.Context, path string) (*Ledger, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sqlx.Open(driverName, path+pragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := sqlstore.New(ctx, db, ddl)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Ledger{Store: store, path: path}, nil
}

// Path returns the database file path.
func (l *Ledger) Path() string { return l.path }
