package domain

import "context"

// LedgerTimeLayout is the timestamp form written to ledger rows.
const LedgerTimeLayout = "2006-01-02 15:04:05"

// LedgerRow is one entry of the ten-column master log. Hens, Cocks, Water and
// Feed hold either a number or a marker such as "N/A", so every column is text.
type LedgerRow struct {
	Timestamp string `json:"timestamp" db:"recorded_at"`
	Zone      string `json:"zone" db:"zone"`
	Scope     string `json:"scope" db:"scope"`
	EntityID  string `json:"entity_id" db:"entity_id"`
	Hens      string `json:"hens" db:"hens"`
	Cocks     string `json:"cocks" db:"cocks"`
	Water     string `json:"water" db:"water"`
	Feed      string `json:"feed" db:"feed"`
	Task      string `json:"task" db:"task"`
	Notes     string `json:"notes" db:"notes"`
}

// Ledger is the remote append/read collaborator. Implementations report
// authentication, authorization and network failures as errors; they never
// read the in-memory farm state.
type Ledger interface {
	// Append stores row after any previously appended rows.
	Append(ctx context.Context, row LedgerRow) error
	// FetchRecent returns at most n rows, most recent first. An empty store
	// yields an empty slice and no error.
	FetchRecent(ctx context.Context, n int) ([]LedgerRow, error)
}

// SyncStatus distinguishes a confirmed remote mirror from a local-only save.
type SyncStatus string

const (
	SyncConfirmed SyncStatus = "synced"
	SyncLocalOnly SyncStatus = "local_only"
)

// SyncResult is the outcome of a workflow step that mutates local state and
// then mirrors it to the ledger.
type SyncResult struct {
	Status  SyncStatus
	Message string
	Err     error
}

// Synced reports whether the ledger confirmed the append.
func (r SyncResult) Synced() bool { return r.Status == SyncConfirmed }
