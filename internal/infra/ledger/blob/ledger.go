// Package blob archives ledger rows as individual JSON objects in a blob
// store. Keys sort by append time so listing a prefix replays the ledger in
// order.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmtwin/internal/blob"
	"farmtwin/pkg/domain"
)

var _ domain.Ledger = (*Ledger)(nil)

const (
	// RowPrefix is the key prefix under which rows are written.
	RowPrefix   = "ledger/rows/"
	contentType = "application/json"
)

// Ledger writes one object per row.
type Ledger struct {
	store blob.Store
	now   func() time.Time

	mu   sync.Mutex
	last int64
}

// New returns a ledger over store.
func New(store blob.Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Store returns the backing blob store.
func (l *Ledger) Store() blob.Store { return l.store }

// rowKey returns a key strictly greater than every key handed out before by
// this ledger. The uuid suffix keeps concurrent writers from colliding.
func (l *Ledger) rowKey() string {
	l.mu.Lock()
	stamp := l.now().UnixNano()
	if stamp <= l.last {
		stamp = l.last + 1
	}
	l.last = stamp
	l.mu.Unlock()
	return fmt.Sprintf("%s%020d-%s.json", RowPrefix, stamp, uuid.NewString())
}

// Append stores row as a new JSON object.
func (l *Ledger) Append(ctx context.Context, row domain.LedgerRow) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode ledger row: %w", err)
	}
	key := l.rowKey()
	_, err = l.store.Put(ctx, key, bytes.NewReader(payload), blob.PutOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"zone": row.Zone, "task": row.Task},
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// FetchRecent lists the row prefix and decodes the last n objects, newest
// first.
func (l *Ledger) FetchRecent(ctx context.Context, n int) ([]domain.LedgerRow, error) {
	rows := []domain.LedgerRow{}
	if n <= 0 {
		return rows, nil
	}
	infos, err := l.store.List(ctx, RowPrefix)
	if err != nil {
		return nil, fmt.Errorf("list ledger rows: %w", err)
	}
	for i := len(infos) - 1; i >= 0 && len(rows) < n; i-- {
		row, err := l.read(ctx, infos[i].Key)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Ledger) read(ctx context.Context, key string) (domain.LedgerRow, error) {
	_, rc, err := l.store.Get(ctx, key)
	if err != nil {
		return domain.LedgerRow{}, fmt.Errorf("get %s: %w", key, err)
	}
	defer func() { _ = rc.Close() }()
	var row domain.LedgerRow
	if err := json.NewDecoder(rc).Decode(&row); err != nil {
		return domain.LedgerRow{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return row, nil
}
