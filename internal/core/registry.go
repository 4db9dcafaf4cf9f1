package core

import (
	"fmt"

	"farmtwin/pkg/domain"
)

type speciesPopulation struct {
	zones []Zone
	index map[string]int
}

// PopulationRegistry holds the species → zone → unit hierarchy built once from
// the seed rules, plus the optional active selection. It performs no locking;
// callers serialize access.
type PopulationRegistry struct {
	order     []Species
	species   map[Species]*speciesPopulation
	ids       map[string]UnitKey
	selection *UnitKey
}

// NewPopulationRegistry builds the seeded registry. Construction is
// deterministic: repeated calls yield identical ids, names and weights.
func NewPopulationRegistry() (*PopulationRegistry, error) {
	return buildRegistry(seedZoneRules())
}

func buildRegistry(rules []zoneRule) (*PopulationRegistry, error) {
	r := &PopulationRegistry{
		species: make(map[Species]*speciesPopulation, len(rules)),
		ids:     make(map[string]UnitKey),
	}
	for _, rule := range rules {
		if _, dup := r.species[rule.species]; dup {
			return nil, fmt.Errorf("species %s registered twice", rule.species)
		}
		pop := &speciesPopulation{index: make(map[string]int)}
		for _, name := range rule.zones() {
			if _, dup := pop.index[name]; dup {
				return nil, fmt.Errorf("zone %q registered twice for %s", name, rule.species)
			}
			units := rule.generate(name)
			for _, u := range units {
				key := UnitKey{Species: rule.species, Zone: name, ID: u.ID}
				if prev, dup := r.ids[u.ID]; dup {
					return nil, fmt.Errorf("unit id %s of %s collides with %s", u.ID, key, prev)
				}
				r.ids[u.ID] = key
			}
			pop.index[name] = len(pop.zones)
			pop.zones = append(pop.zones, Zone{Name: name, Units: units})
		}
		r.order = append(r.order, rule.species)
		r.species[rule.species] = pop
	}
	return r, nil
}

func (r *PopulationRegistry) population(species Species) (*speciesPopulation, error) {
	pop, ok := r.species[species]
	if !ok {
		return nil, ErrNotFound{Kind: KindSpecies, Key: string(species)}
	}
	return pop, nil
}

func (r *PopulationRegistry) zone(species Species, zone string) (*Zone, error) {
	pop, err := r.population(species)
	if err != nil {
		return nil, err
	}
	idx, ok := pop.index[zone]
	if !ok {
		return nil, ErrNotFound{Kind: KindZone, Key: fmt.Sprintf("%s/%s", species, zone)}
	}
	return &pop.zones[idx], nil
}

// Species returns the registered species in construction order.
func (r *PopulationRegistry) Species() []Species {
	return append([]Species(nil), r.order...)
}

// ZonesFor returns the zone names of species in construction order.
func (r *PopulationRegistry) ZonesFor(species Species) ([]string, error) {
	pop, err := r.population(species)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(pop.zones))
	for i, z := range pop.zones {
		out[i] = z.Name
	}
	return out, nil
}

// UnitsIn returns a copy of the units owned by zone.
func (r *PopulationRegistry) UnitsIn(species Species, zone string) ([]Unit, error) {
	z, err := r.zone(species, zone)
	if err != nil {
		return nil, err
	}
	return append([]Unit(nil), z.Units...), nil
}

// FindUnit resolves a unit by species, zone and id.
func (r *PopulationRegistry) FindUnit(species Species, zone, id string) (Unit, error) {
	z, err := r.zone(species, zone)
	if err != nil {
		return Unit{}, err
	}
	for _, u := range z.Units {
		if u.ID == id {
			return u, nil
		}
	}
	return Unit{}, ErrNotFound{Kind: KindUnit, Key: id}
}

// Locate returns the full key of a unit id.
func (r *PopulationRegistry) Locate(id string) (UnitKey, bool) {
	key, ok := r.ids[id]
	return key, ok
}

// Units returns every unit across the registry in construction order.
func (r *PopulationRegistry) Units() []Unit {
	out := make([]Unit, 0, len(r.ids))
	for _, s := range r.order {
		for _, z := range r.species[s].zones {
			out = append(out, z.Units...)
		}
	}
	return out
}

// Census counts females, males and biomass per zone.
func (r *PopulationRegistry) Census() []ZoneCensus {
	var out []ZoneCensus
	for _, s := range r.order {
		for _, z := range r.species[s].zones {
			c := ZoneCensus{Species: s, Zone: z.Name}
			for _, u := range z.Units {
				if u.Sex == domain.SexMale {
					c.Males++
				} else {
					c.Females++
				}
				c.BiomassK += u.Weight
			}
			out = append(out, c)
		}
	}
	return out
}

// Select focuses the unit addressed by key. The selection is left unchanged
// when the key does not resolve.
func (r *PopulationRegistry) Select(key UnitKey) error {
	if _, err := r.FindUnit(key.Species, key.Zone, key.ID); err != nil {
		return err
	}
	k := key
	r.selection = &k
	return nil
}

// ClearSelection drops the active selection. The unit itself is untouched.
func (r *PopulationRegistry) ClearSelection() {
	r.selection = nil
}

// ActiveKey returns the key of the active selection, if any.
func (r *PopulationRegistry) ActiveKey() (UnitKey, bool) {
	if r.selection == nil {
		return UnitKey{}, false
	}
	return *r.selection, true
}

// ActiveUnit resolves the active selection. A key that no longer resolves is
// cleared and reported as absent.
func (r *PopulationRegistry) ActiveUnit() (Unit, bool) {
	if r.selection == nil {
		return Unit{}, false
	}
	u, err := r.FindUnit(r.selection.Species, r.selection.Zone, r.selection.ID)
	if err != nil {
		r.selection = nil
		return Unit{}, false
	}
	return u, true
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
