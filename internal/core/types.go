package core

import "farmtwin/pkg/domain"

type (
	Species         = domain.Species
	Unit            = domain.Unit
	Zone            = domain.Zone
	UnitKey         = domain.UnitKey
	ZoneCensus      = domain.ZoneCensus
	InventoryItem   = domain.InventoryItem
	PriceTable      = domain.PriceTable
	Worker          = domain.Worker
	TaskLabel       = domain.TaskLabel
	ObservationTask = domain.ObservationTask
	TaskAssignment  = domain.TaskAssignment
	SliderInputs    = domain.SliderInputs
	EconomicsReport = domain.EconomicsReport
	FluxSample      = domain.FluxSample
	FluxReadings    = domain.FluxReadings
	LedgerRow       = domain.LedgerRow
	Ledger          = domain.Ledger
	SyncResult      = domain.SyncResult
	ErrNotFound     = domain.ErrNotFound
	ValidationError = domain.ValidationError
	RemoteSyncError = domain.RemoteSyncError
	Kind            = domain.Kind
)

const (
	SpeciesPoultry = domain.SpeciesPoultry
	SpeciesScampi  = domain.SpeciesScampi
	SpeciesFish    = domain.SpeciesFish
)

const (
	KindSpecies = domain.KindSpecies
	KindZone    = domain.KindZone
	KindUnit    = domain.KindUnit
	KindItem    = domain.KindItem
	KindWorker  = domain.KindWorker
	KindProduct = domain.KindProduct
)
