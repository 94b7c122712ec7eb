package game

type Rules interface {
	DieSides() int
	DetermineAttackOutcome(attackRoll, defendRoll int) (attackerLosses, defenderLosses int)
	ConquestCost() int
	OccupyingTroops() int
}
