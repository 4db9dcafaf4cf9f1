package core

import (
	"fmt"
	"strings"

	"farmtwin/pkg/domain"
)

// Inventory item names referenced by workflows and the default price table.
const (
	ItemNitroBoost    = "NitroBoost (L)"
	ItemPhosBoost     = "PhosBoost (L)"
	ItemRootSerum     = "Root Serum (L)"
	ItemProbiotics    = "Probiotics (kg)"
	ItemTurmeric      = "Turmeric (kg)"
	ItemDesignerEggs  = "Designer Eggs (qty)"
	ItemSerumBottles  = "Packed Serum Bottles"
	ItemCleanWater    = "Clean Water (L)"
	designerEggPrice  = 25.0
	serumBottlePrice  = 450.0
	poultryZoneSuffix = " Meadow"
)

// seedInventory is the starting vault in display order.
var seedInventory = []domain.InventoryItem{
	{Name: ItemNitroBoost, Quantity: 45, Measure: domain.MeasureLiters},
	{Name: ItemPhosBoost, Quantity: 22, Measure: domain.MeasureLiters},
	{Name: ItemRootSerum, Quantity: 110, Measure: domain.MeasureLiters},
	{Name: ItemProbiotics, Quantity: 8.0, Measure: domain.MeasureKilograms},
	{Name: ItemTurmeric, Quantity: 12.0, Measure: domain.MeasureKilograms},
	{Name: ItemDesignerEggs, Quantity: 320, Measure: domain.MeasureCount},
	{Name: ItemSerumBottles, Quantity: 45, Measure: domain.MeasureCount},
	{Name: ItemCleanWater, Quantity: 950, Measure: domain.MeasureLiters},
}

// DefaultPriceTable prices the two sellable stock items.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		ItemDesignerEggs: designerEggPrice,
		ItemSerumBottles: serumBottlePrice,
	}
}

// Field staff and the duty categories a supervisor can push to them.
var (
	staffRoster = []Worker{"Arjun", "Meena", "Suresh"}

	taskCategories = []TaskLabel{
		"Feed Replenishment",
		"Tank Cleaning",
		"Egg Sorting",
		"Vet Triage",
	}

	observationCategories = []ObservationTask{
		"Medical Check",
		"Routine Log",
		"Feeding Adjustment",
		"Vet Emergency",
	}
)

// StaffRoster returns the fixed worker roster.
func StaffRoster() []Worker { return append([]Worker(nil), staffRoster...) }

// TaskCategories returns the assignable duty labels.
func TaskCategories() []TaskLabel { return append([]TaskLabel(nil), taskCategories...) }

// ObservationCategories returns the categories accepted on a unit health log.
func ObservationCategories() []ObservationTask {
	return append([]ObservationTask(nil), observationCategories...)
}

func knownWorker(w Worker) bool {
	for _, s := range staffRoster {
		if s == w {
			return true
		}
	}
	return false
}

func knownTask(label TaskLabel) bool {
	for _, c := range taskCategories {
		if c == label {
			return true
		}
	}
	return false
}

func knownObservation(task ObservationTask) bool {
	for _, c := range observationCategories {
		if c == task {
			return true
		}
	}
	return false
}

// zoneRule describes how one species lays out its zones and units.
type zoneRule struct {
	species  Species
	zones    func() []string
	generate func(zone string) []Unit
}

var (
	henRoster = []string{"Jojo", "Tutu", "Zuzu", "Coco", "Lulu"}

	aquaZones = []string{
		"Full Sun Exposure",
		"Controlled Shade",
		"Special Omega Feed",
		"Probiotic Pulse Tank",
		"Growth Control",
		"Reserve Tank",
	}
)

const (
	hensPerMeadow   = 5
	unitsPerTank    = 10
	henWeight       = 2.1
	roosterWeight   = 3.4
	scampiWeight    = 0.05
	fishWeight      = 0.8
	roosterName     = "Chief"
	roosterSensor   = "IOT-0"
	poultryIDStem   = 3
	aquaIDStem      = 2
	poultryIDPrefix = "P"
)

func seedZoneRules() []zoneRule {
	return []zoneRule{
		{species: SpeciesPoultry, zones: poultryZones, generate: poultryUnits},
		{species: SpeciesScampi, zones: aquaZoneNames, generate: aquaUnits("S", "Scamp", "IOT-S", scampiWeight)},
		{species: SpeciesFish, zones: aquaZoneNames, generate: aquaUnits("F", "Finley", "IOT-F", fishWeight)},
	}
}

func poultryZones() []string {
	out := make([]string, 0, len(eggCatalog))
	for _, p := range eggCatalog {
		out = append(out, p.Name+poultryZoneSuffix)
	}
	return out
}

func aquaZoneNames() []string { return append([]string(nil), aquaZones...) }

// poultryUnits derives the id stem from the product key, not the zone label,
// so "Extra Protein Meadow" yields P-Ext-1..5 and P-Ext-C.
func poultryUnits(zone string) []Unit {
	stem := prefix(strings.TrimSuffix(zone, poultryZoneSuffix), poultryIDStem)
	units := make([]Unit, 0, hensPerMeadow+1)
	for j := 1; j <= hensPerMeadow; j++ {
		units = append(units, Unit{
			ID:       fmt.Sprintf("%s-%s-%d", poultryIDPrefix, stem, j),
			Sex:      domain.SexFemale,
			Name:     henRoster[j-1],
			Weight:   henWeight,
			SensorID: fmt.Sprintf("IOT-%d", j),
		})
	}
	units = append(units, Unit{
		ID:       fmt.Sprintf("%s-%s-C", poultryIDPrefix, stem),
		Sex:      domain.SexMale,
		Name:     roosterName,
		Weight:   roosterWeight,
		SensorID: roosterSensor,
	})
	return units
}

func aquaUnits(idPrefix, namePrefix, sensorPrefix string, weight float64) func(string) []Unit {
	return func(zone string) []Unit {
		stem := prefix(zone, aquaIDStem)
		units := make([]Unit, 0, unitsPerTank)
		for j := 1; j <= unitsPerTank; j++ {
			units = append(units, Unit{
				ID:       fmt.Sprintf("%s-%s-%d", idPrefix, stem, j),
				Sex:      domain.SexFemale,
				Name:     fmt.Sprintf("%s_%d", namePrefix, j),
				Weight:   weight,
				SensorID: fmt.Sprintf("%s%d", sensorPrefix, j),
			})
		}
		return units
	}
}
