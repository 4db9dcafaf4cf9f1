// Package memory keeps ledger rows in process memory. It is the default
// ledger for sessions that have no remote configured.
package memory

import (
	"context"
	"sync"

	"farmtwin/pkg/domain"
)

var _ domain.Ledger = (*Ledger)(nil)

// Ledger is an append-only slice of rows guarded by a mutex.
type Ledger struct {
	mu   sync.RWMutex
	rows []domain.LedgerRow
}

// New returns an empty ledger.
func New() *Ledger { return &Ledger{} }

// Append stores row after all earlier rows.
func (l *Ledger) Append(ctx context.Context, row domain.LedgerRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	l.rows = append(l.rows, row)
	l.mu.Unlock()
	return nil
}

// FetchRecent returns up to n rows, newest first.
func (l *Ledger) FetchRecent(ctx context.Context, n int) ([]domain.LedgerRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 {
		return []domain.LedgerRow{}, nil
	}
	n = min(n, len(l.rows))
	out := make([]domain.LedgerRow, 0, n)
	for i := len(l.rows) - 1; i >= len(l.rows)-n; i-- {
		out = append(out, l.rows[i])
	}
	return out, nil
}

// Len reports the number of stored rows.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}
