// Package domain defines the farm entities, value types, collaborator
// contracts and error taxonomy shared by farmtwin packages.
package domain

import "fmt"

// Species identifies a production line tracked by the registry.
type Species string

// Supported species. The set is closed; zone layout and unit generation
// depend on it.
const (
	SpeciesPoultry Species = "Poultry"
	SpeciesScampi  Species = "Scampi"
	SpeciesFish    Species = "Fish"
)

// AllSpecies returns the fixed species set in display order.
func AllSpecies() []Species {
	return []Species{SpeciesPoultry, SpeciesScampi, SpeciesFish}
}

// ParseSpecies resolves a species name, returning ErrNotFound for anything
// outside the fixed set.
func ParseSpecies(name string) (Species, error) {
	for _, s := range AllSpecies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", ErrNotFound{Kind: KindSpecies, Key: name}
}

// Sex of a tracked unit.
type Sex string

const (
	SexFemale Sex = "F"
	SexMale   Sex = "M"
)

// Unit is one tracked animal or organism.
type Unit struct {
	ID       string  `json:"id"`
	Sex      Sex     `json:"sex"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight_kg"`
	SensorID string  `json:"sensor_id"`
}

// Zone owns an ordered sequence of units. Zone names are unique within a species.
type Zone struct {
	Name  string `json:"name"`
	Units []Unit `json:"units"`
}

// UnitKey addresses a unit without holding it. The active selection stores a
// key and re-resolves it on every read.
type UnitKey struct {
	Species Species `json:"species"`
	Zone    string  `json:"zone"`
	ID      string  `json:"id"`
}

func (k UnitKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Species, k.Zone, k.ID)
}

// ZoneCensus summarises the population of one zone.
type ZoneCensus struct {
	Species  Species `json:"species"`
	Zone     string  `json:"zone"`
	Females  int     `json:"females"`
	Males    int     `json:"males"`
	BiomassK float64 `json:"biomass_kg"`
}

// Total returns the number of units counted in the zone.
func (c ZoneCensus) Total() int { return c.Females + c.Males }

// Measure is the unit a supply quantity is expressed in.
type Measure string

const (
	MeasureLiters    Measure = "L"
	MeasureKilograms Measure = "kg"
	MeasureCount     Measure = "qty"
)

// LowStockThreshold applies to every inventory item regardless of measure.
const LowStockThreshold = 20.0

// InventoryItem is a named supply quantity.
type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Measure  Measure `json:"measure"`
}

// IsLowStock reports whether the quantity is below LowStockThreshold.
func (i InventoryItem) IsLowStock() bool { return i.Quantity < LowStockThreshold }

// PriceTable maps inventory item names to a per-unit price.
type PriceTable map[string]float64

// Worker is a member of the field staff roster.
type Worker string

// TaskLabel is a field duty that can be assigned to a worker.
type TaskLabel string

// DefaultTask is what an unassigned worker is reported as doing.
const DefaultTask TaskLabel = "General Patrol"

// ObservationTask categorises a unit health log entry.
type ObservationTask string

// TaskAssignment is the ordered duty list of one worker.
type TaskAssignment struct {
	Worker Worker      `json:"worker"`
	Tasks  []TaskLabel `json:"tasks"`
}
