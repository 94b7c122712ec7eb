package game

import (
	"fmt"
	"strings"
	"war/utils"
)

// Faction is the army color controlling a territory.
type Faction int

const (
	NoFaction Faction = iota
	Gray
	Blue
	Green
	Yellow
	Red
)

// DefaultPlayer is the faction given to the human player.
const DefaultPlayer = Green

var factionNames = []string{"", "Gray", "Blue", "Green", "Yellow", "Red"}

// AllFactions returns every playable faction in table order.
func AllFactions() []Faction {
	return []Faction{Gray, Blue, Green, Yellow, Red}
}

func (f Faction) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Faction(%d)", int(f))
	}
	return factionNames[f]
}

// Valid reports whether f is one of the playable factions.
func (f Faction) Valid() bool {
	return f > NoFaction && int(f) < len(factionNames)
}

// ParseFaction matches a faction name, ignoring case.
func ParseFaction(name string) (Faction, error) {
	name = strings.TrimSpace(name)
	idx := utils.FindIndexFunc(factionNames, func(candidate string) bool {
		return candidate != "" && strings.EqualFold(candidate, name)
	})
	if idx < 0 {
		return NoFaction, fmt.Errorf("unknown faction %q", name)
	}
	return Faction(idx), nil
}

func (f Faction) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown faction %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Faction) UnmarshalText(text []byte) error {
	parsed, err := ParseFaction(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
