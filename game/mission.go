package game

import (
	"fmt"
	"war/meta"
)

type MissionKind int

const (
	EliminateFaction MissionKind = iota
	HoldCount
)

func (k MissionKind) String() string {
	switch k {
	case EliminateFaction:
		return "eliminate"
	case HoldCount:
		return "hold"
	default:
		return fmt.Sprintf("MissionKind(%d)", int(k))
	}
}

// Mission is the player's objective. Target is set for EliminateFaction, Count for HoldCount.
type Mission struct {
	Kind   MissionKind
	Target Faction
	Count  int
}

func (m Mission) String() string {
	if m.Kind == EliminateFaction {
		return fmt.Sprintf("Destroy the %s army", m.Target)
	}
	return fmt.Sprintf("Conquer %d territories", m.Count)
}

// MissionGenerator draws the single mission of a game.
type MissionGenerator struct {
	src        Source
	factions   []Faction
	holdTarget int
}

// NewMissionGenerator draws elimination targets from factions, normally Registry.Factions().
func NewMissionGenerator(src Source, factions []Faction) *MissionGenerator {
	return &MissionGenerator{
		src:        src,
		factions:   factions,
		holdTarget: meta.HOLD_TARGET,
	}
}

// Generate picks either mission kind with equal probability.
func (g *MissionGenerator) Generate() Mission {
	kind := MissionKind(g.src.Intn(2))
	if kind == EliminateFaction && len(g.factions) > 0 {
		return Mission{
			Kind:   EliminateFaction,
			Target: g.factions[g.src.Intn(len(g.factions))],
		}
	}
	return Mission{Kind: HoldCount, Count: g.holdTarget}
}
