package core

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"farmtwin/internal/infra/ledger/memory"
	"farmtwin/pkg/domain"
)

// Ledger row markers written by the workflows.
const (
	markerNA          = "N/A"
	markerOptimum     = "Optimum"
	vaultZone         = "Inventory_Vault"
	vaultScope        = "Production"
	eggCollectionTask = "Egg Collection"
)

// ObservationInput is the health log entered on an open unit profile.
type ObservationInput struct {
	Task  ObservationTask
	Notes string
	Feed  int
}

// Session owns the farm state for one supervisor session: the population
// registry, the inventory vault and the task board, plus the ledger
// collaborator. It is built once with seed data and mutated in place. Methods
// must not be called concurrently.
type Session struct {
	registry  *PopulationRegistry
	inventory *InventoryLedger
	tasks     *TaskBoard

	ledger  Ledger
	logger  Logger
	clock   Clock
	metrics MetricsRecorder
	tracer  Tracer
}

// NewSession seeds a session. Without WithLedger rows are kept in memory.
func NewSession(opts ...Option) (*Session, error) {
	registry, err := NewPopulationRegistry()
	if err != nil {
		return nil, fmt.Errorf("seed population: %w", err)
	}
	inventory, err := NewInventoryLedger()
	if err != nil {
		return nil, fmt.Errorf("seed inventory: %w", err)
	}
	s := &Session{
		registry:  registry,
		inventory: inventory,
		tasks:     NewTaskBoard(),
		ledger:    memory.New(),
		logger:    noopLogger{},
		clock:     ClockFunc(nil),
		metrics:   noopMetrics{},
		tracer:    noopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Registry returns the population registry.
func (s *Session) Registry() *PopulationRegistry { return s.registry }

// Inventory returns the inventory vault.
func (s *Session) Inventory() *InventoryLedger { return s.inventory }

// Tasks returns the task board.
func (s *Session) Tasks() *TaskBoard { return s.tasks }

func (s *Session) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	started := time.Now()
	err := fn(ctx)
	s.metrics.Observe(ctx, operation, err == nil, time.Since(started))
	span.End(err)
	if err != nil {
		s.logger.Error("operation failed", "operation", operation, "error", err)
		return err
	}
	s.logger.Debug("operation completed", "operation", operation)
	return nil
}

func (s *Session) appendRow(ctx context.Context, row LedgerRow) error {
	row.Timestamp = s.clock.Now().Format(domain.LedgerTimeLayout)
	return s.run(ctx, "ledger_append", func(ctx context.Context) error {
		if err := s.ledger.Append(ctx, row); err != nil {
			return RemoteSyncError{Op: "append", Err: err}
		}
		return nil
	})
}

// OpenProfile focuses the unit addressed by key.
func (s *Session) OpenProfile(key UnitKey) (Unit, error) {
	if err := s.registry.Select(key); err != nil {
		return Unit{}, err
	}
	u, _ := s.registry.ActiveUnit()
	s.logger.Info("profile opened", "unit", key.String())
	return u, nil
}

// DismissProfile clears the active selection.
func (s *Session) DismissProfile() {
	s.registry.ClearSelection()
}

// SyncObservation mirrors a health log for the open profile to the ledger.
// The profile is closed only once the ledger confirms the append.
func (s *Session) SyncObservation(ctx context.Context, in ObservationInput) (SyncResult, error) {
	key, ok := s.registry.ActiveKey()
	if !ok {
		return SyncResult{}, ValidationError{Field: "selection", Reason: "no unit profile is open"}
	}
	unit, ok := s.registry.ActiveUnit()
	if !ok {
		return SyncResult{}, ErrNotFound{Kind: KindUnit, Key: key.ID}
	}
	if !knownObservation(in.Task) {
		return SyncResult{}, ValidationError{Field: "task", Reason: fmt.Sprintf("unknown observation category %q", in.Task)}
	}
	if strings.TrimSpace(in.Notes) == "" {
		return SyncResult{}, ValidationError{Field: "notes", Reason: "observation notes are required"}
	}

	row := LedgerRow{
		Zone:     key.Zone,
		Scope:    string(key.Species),
		EntityID: fmt.Sprintf("%s_%s", key.Zone, unit.Name),
		Hens:     markerNA,
		Cocks:    markerNA,
		Water:    markerOptimum,
		Feed:     strconv.Itoa(in.Feed),
		Task:     string(in.Task),
		Notes:    in.Notes,
	}
	if err := s.appendRow(ctx, row); err != nil {
		s.logger.Warn("observation not mirrored", "unit", key.String(), "error", err)
		return SyncResult{
			Status:  domain.SyncLocalOnly,
			Message: fmt.Sprintf("observation for %s not yet mirrored to the ledger", unit.Name),
			Err:     err,
		}, nil
	}
	s.registry.ClearSelection()
	return SyncResult{
		Status:  domain.SyncConfirmed,
		Message: fmt.Sprintf("data for %s synced to the ledger", unit.Name),
	}, nil
}

// CollectEggs deposits collected eggs into the vault and mirrors the deposit
// to the ledger. A ledger failure leaves the local increment in place.
func (s *Session) CollectEggs(ctx context.Context, worker Worker, qty int) (SyncResult, error) {
	if qty <= 0 {
		return SyncResult{}, ValidationError{Field: "quantity", Reason: fmt.Sprintf("collection quantity must be positive, got %d", qty)}
	}
	if !knownWorker(worker) {
		return SyncResult{}, ValidationError{Field: "worker", Reason: fmt.Sprintf("%q is not on the staff roster", worker)}
	}
	if err := s.inventory.Increment(ItemDesignerEggs, float64(qty)); err != nil {
		return SyncResult{}, err
	}
	s.logger.Info("eggs deposited", "worker", string(worker), "quantity", qty)

	row := LedgerRow{
		Zone:     vaultZone,
		Scope:    vaultScope,
		EntityID: fmt.Sprintf("VAULT_%s", worker),
		Hens:     strconv.Itoa(qty),
		Cocks:    "0",
		Water:    markerNA,
		Feed:     markerNA,
		Task:     eggCollectionTask,
		Notes:    fmt.Sprintf("Deposited by %s via Worker Dashboard", worker),
	}
	if err := s.appendRow(ctx, row); err != nil {
		s.logger.Warn("deposit saved locally only", "worker", string(worker), "error", err)
		return SyncResult{
			Status:  domain.SyncLocalOnly,
			Message: "inventory updated locally, ledger sync failed",
			Err:     err,
		}, nil
	}
	return SyncResult{
		Status:  domain.SyncConfirmed,
		Message: fmt.Sprintf("%d eggs added to vault and logged to the ledger", qty),
	}, nil
}

// Restock adds one unit of item to the vault.
func (s *Session) Restock(item string) error {
	if err := s.inventory.Increment(item, 1); err != nil {
		return err
	}
	s.logger.Info("item restocked", "item", item)
	return nil
}

// AssignTasks pushes an ordered set of duties to a rostered worker,
// replacing any earlier assignment.
func (s *Session) AssignTasks(worker Worker, tasks []TaskLabel) error {
	if !knownWorker(worker) {
		return ValidationError{Field: "worker", Reason: fmt.Sprintf("%q is not on the staff roster", worker)}
	}
	seen := make(map[TaskLabel]struct{}, len(tasks))
	for _, t := range tasks {
		if !knownTask(t) {
			return ValidationError{Field: "tasks", Reason: fmt.Sprintf("unknown task category %q", t)}
		}
		if _, dup := seen[t]; dup {
			return ValidationError{Field: "tasks", Reason: fmt.Sprintf("task %q listed twice", t)}
		}
		seen[t] = struct{}{}
	}
	s.tasks.Assign(worker, tasks)
	s.logger.Info("tasks assigned", "worker", string(worker), "count", len(tasks))
	return nil
}

// TasksFor returns the duties of a rostered worker.
func (s *Session) TasksFor(worker Worker) ([]TaskLabel, error) {
	if !knownWorker(worker) {
		return nil, ErrNotFound{Kind: KindWorker, Key: string(worker)}
	}
	return s.tasks.TasksFor(worker), nil
}

// RecentLedger reads the n most recent ledger rows, newest first.
func (s *Session) RecentLedger(ctx context.Context, n int) ([]LedgerRow, error) {
	if n <= 0 {
		return nil, ValidationError{Field: "n", Reason: fmt.Sprintf("row count must be positive, got %d", n)}
	}
	var rows []LedgerRow
	err := s.run(ctx, "ledger_fetch", func(ctx context.Context) error {
		var err error
		rows, err = s.ledger.FetchRecent(ctx, n)
		if err != nil {
			return RemoteSyncError{Op: "fetch", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []LedgerRow{}
	}
	return rows, nil
}

func (s *Session) eggStock() float64 {
	qty, err := s.inventory.QuantityOf(ItemDesignerEggs)
	if err != nil {
		return 0
	}
	return qty
}

// Economics computes the operating report against the current egg stock.
func (s *Session) Economics(in SliderInputs) EconomicsReport {
	report := ComputeEconomics(in, s.eggStock())
	if obs, ok := s.metrics.(EconomicsObserver); ok {
		obs.ObserveEconomics(report)
		obs.ObserveInventory(s.inventory.Items())
	}
	return report
}

// Flux returns the circadian series for the inputs.
func (s *Session) Flux(in SliderInputs) iter.Seq[FluxSample] {
	return BiologicalFlux(in)
}

// AssetValue prices the vault with DefaultPriceTable.
func (s *Session) AssetValue() (float64, error) {
	return s.inventory.TotalAssetValue(DefaultPriceTable())
}
