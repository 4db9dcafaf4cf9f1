// Package sqlstore holds the ledger_rows table logic shared by the SQL
// ledger backends. Dialects differ only in DDL and bind style; sqlx rebinds
// queries for the driver in use.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"farmtwin/pkg/domain"
)

var _ domain.Ledger = (*Store)(nil)

const (
	insertRow = `INSERT INTO ledger_rows
		(recorded_at, zone, scope, entity_id, hens, cocks, water, feed, task, notes)
		VALUES (:recorded_at, :zone, :scope, :entity_id, :hens, :cocks, :water, :feed, :task, :notes)`
	selectRecent = `SELECT recorded_at, zone, scope, entity_id, hens, cocks, water, feed, task, notes
		FROM ledger_rows ORDER BY seq DESC LIMIT ?`
	countRows = `SELECT COUNT(*) FROM ledger_rows`
)

// Store appends and reads ledger rows through sqlx.
type Store struct {
	db *sqlx.DB
}

// New applies ddl and returns a store over db.
func New(ctx context.Context, db *sqlx.DB, ddl string) (*Store, error) {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create ledger table: %w", err)
	}
	return &Store{db: db}, nil
}

// Append inserts row; seq preserves append order.
func (s *Store) Append(ctx context.Context, row domain.LedgerRow) error {
	if _, err := s.db.NamedExecContext(ctx, insertRow, row); err != nil {
		return fmt.Errorf("insert ledger row: %w", err)
	}
	return nil
}

// FetchRecent returns up to n rows, newest first.
func (s *Store) FetchRecent(ctx context.Context, n int) ([]domain.LedgerRow, error) {
	rows := []domain.LedgerRow{}
	if n <= 0 {
		return rows, nil
	}
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(selectRecent), n); err != nil {
		return nil, fmt.Errorf("select ledger rows: %w", err)
	}
	return rows, nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, countRows); err != nil {
		return 0, fmt.Errorf("count ledger rows: %w", err)
	}
	return n, nil
}

// DB exposes the underlying handle for tests and maintenance.
func (s *Store) DB() *sqlx.DB { return s.db }

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }
