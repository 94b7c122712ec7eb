package game

import (
	"errors"
	"fmt"
	"strings"
	"war/utils"
)

// ErrInvalidSeed is returned when a registry cannot be built from its seed table.
var ErrInvalidSeed = errors.New("invalid territory seed")

// Territory is a named region held by a faction with a number of troops.
type Territory struct {
	Name    string
	Faction Faction
	Troops  int
}

// Registry holds the territories of a game. Its size is fixed at construction.
type Registry struct {
	territories []Territory
}

// StandardSeeds returns the compiled-in starting map.
func StandardSeeds() []Territory {
	return []Territory{
		{Name: "Winterfell", Faction: Gray, Troops: 10},
		{Name: "Arryn", Faction: Blue, Troops: 3},
		{Name: "Highgarden", Faction: Green, Troops: 6},
		{Name: "Sunspear", Faction: Yellow, Troops: 7},
		{Name: "Casterly Rock", Faction: Red, Troops: 8},
	}
}

// NewRegistry copies the seed table into a new registry.
func NewRegistry(seeds []Territory) (*Registry, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: empty seed table", ErrInvalidSeed)
	}
	territories := make([]Territory, len(seeds))
	for i, seed := range seeds {
		switch {
		case strings.TrimSpace(seed.Name) == "":
			return nil, fmt.Errorf("%w: territory %d has no name", ErrInvalidSeed, i+1)
		case !seed.Faction.Valid():
			return nil, fmt.Errorf("%w: territory %d has unknown faction %d", ErrInvalidSeed, i+1, int(seed.Faction))
		case seed.Troops < 0:
			return nil, fmt.Errorf("%w: territory %d has negative troops", ErrInvalidSeed, i+1)
		}
		territories[i] = seed
	}
	return &Registry{territories: territories}, nil
}

// NewStandardRegistry builds the registry for the standard map.
func NewStandardRegistry() (*Registry, error) {
	return NewRegistry(StandardSeeds())
}

func (r *Registry) Len() int {
	return len(r.territories)
}

// Territory returns a copy of the i-th territory (0-based). Out of range indices panic.
func (r *Registry) Territory(i int) Territory {
	return r.territories[i]
}

// Snapshot returns a copy of all territories in order.
func (r *Registry) Snapshot() []Territory {
	snapshot := make([]Territory, len(r.territories))
	copy(snapshot, r.territories)
	return snapshot
}

// Factions returns the distinct factions on the map in first-seen order.
func (r *Registry) Factions() []Faction {
	var factions []Faction
	for _, t := range r.territories {
		if utils.FindIndex(factions, t.Faction) < 0 {
			factions = append(factions, t.Faction)
		}
	}
	return factions
}

// Owned counts the territories held by faction f.
func (r *Registry) Owned(f Faction) int {
	return countOwned(r.territories, f)
}

func (r *Registry) contains(i int) bool {
	return i >= 0 && i < len(r.territories)
}

// at gives the resolver mutable access to a territory.
func (r *Registry) at(i int) *Territory {
	return &r.territories[i]
}

func countOwned(territories []Territory, f Faction) int {
	owned := 0
	for _, t := range territories {
		if t.Faction == f {
			owned++
		}
	}
	return owned
}
