package domain

import "fmt"

// Kind names the sort of key a lookup failed on.
type Kind string

const (
	KindSpecies Kind = "species"
	KindZone    Kind = "zone"
	KindUnit    Kind = "unit"
	KindItem    Kind = "inventory item"
	KindWorker  Kind = "worker"
	KindProduct Kind = "egg product"
)

// ErrNotFound is returned when a species, zone, unit, item, worker or product
// lookup does not resolve.
type ErrNotFound struct {
	Kind Kind
	Key  string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// ValidationError reports a caller-supplied value outside its contract. No
// state is mutated when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteSyncError wraps a failure of the ledger collaborator. Local mutations
// already applied are kept.
type RemoteSyncError struct {
	Op  string
	Err error
}

func (e RemoteSyncError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e RemoteSyncError) Unwrap() error { return e.Err }

func rangeReason(min, max, got int) string {
	return fmt.Sprintf("must be within [%d,%d], got %d", min, max, got)
}
