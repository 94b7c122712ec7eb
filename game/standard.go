package game

import "war/meta"

type StandardRules struct {
	Sides  int
	Cost   int
	Occupy int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides:  meta.DIE_SIDES,
		Cost:   1,
		Occupy: 1,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

// DetermineAttackOutcome compares one die per side. Ties go to the attacker.
func (sr *StandardRules) DetermineAttackOutcome(attackRoll, defendRoll int) (attackerLosses, defenderLosses int) {
	if attackRoll >= defendRoll {
		return 0, 1
	}
	return 1, 0
}

// ConquestCost is paid by the attacker when the defender falls.
func (sr *StandardRules) ConquestCost() int {
	return sr.Cost
}

// OccupyingTroops is left on a conquered territory.
func (sr *StandardRules) OccupyingTroops() int {
	return sr.Occupy
}
