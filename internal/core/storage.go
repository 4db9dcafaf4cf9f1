package core

import (
	"context"
	"fmt"

	"farmtwin/internal/blob"
	blobledger "farmtwin/internal/infra/ledger/blob"
	"farmtwin/internal/infra/ledger/memory"
	"farmtwin/internal/infra/ledger/postgres"
	"farmtwin/internal/infra/ledger/sqlite"
)

// LedgerDriver identifies a ledger backend.
type LedgerDriver string

const (
	LedgerMemory   LedgerDriver = "memory"   // process memory (tests / ephemeral)
	LedgerSQLite   LedgerDriver = "sqlite"   // embedded sqlite file
	LedgerPostgres LedgerDriver = "postgres" // PostgreSQL server
	LedgerBlob     LedgerDriver = "blob"     // one JSON object per row in a blob store
)

// LedgerConfig selects and configures the ledger backend.
type LedgerConfig struct {
	Driver      LedgerDriver
	SQLitePath  string
	PostgresDSN string
	Blob        blob.Config
}

// CloseFunc releases resources held by an opened ledger.
type CloseFunc func() error

func noClose() error { return nil }

// OpenLedger builds the ledger named by cfg.Driver. Defaults to sqlite when
// unset. The returned CloseFunc is never nil.
func OpenLedger(ctx context.Context, cfg LedgerConfig) (Ledger, CloseFunc, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = LedgerSQLite
	}
	switch driver {
	case LedgerMemory:
		return memory.New(), noClose, nil
	case LedgerSQLite:
		l, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Close, nil
	case LedgerPostgres:
		l, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Close, nil
	case LedgerBlob:
		store, err := blob.Open(ctx, cfg.Blob)
		if err != nil {
			return nil, nil, fmt.Errorf("open blob store: %w", err)
		}
		return blobledger.New(store), noClose, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger driver %s", driver)
	}
}
