// Package postgres stores ledger rows in a Postgres table through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/jmoiron/sqlx"

	"farmtwin/internal/infra/ledger/sqlstore"
)

const (
	driverName = "pgx"
	defaultDSN = "postgres://localhost/farmtwin?sslmode=disable"
)

const ddl = `CREATE TABLE IF NOT EXISTS ledger_rows (
	seq BIGSERIAL PRIMARY KEY,
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

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Ledger is a sqlstore.Store bound to a Postgres database.
type Ledger struct {
	*sqlstore.Store
}

// Open connects to dsn (or a localhost default), pings the server and
// ensures the ledger table exists.
func Open(ctx context.Context, dsn string) (*Ledger, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	raw, err := sqlOpen(driverName, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	store, err := sqlstore.New(ctx, sqlx.NewDb(raw, driverName), ddl)
	if err != nil {
		_ = raw.Close()
		return nil, err
	}
	return &Ledger{Store: store}, nil
}

// OverrideSQLOpen swaps the sql.Open hook for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = fn
	openMu.Unlock()
	return func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	}
}
