package game

// Source is the random stream used to draw missions and roll dice.
// Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// View is a read-only picture of the game handed to whoever picks the next action.
type View struct {
	Territories []Territory
	Mission     Mission
	Player      Faction
}

// Satisfied reports whether the mission is met on the territories of the view.
func (v View) Satisfied() bool {
	return missionSatisfied(v.Territories, v.Mission, v.Player)
}

// LegalAttacks lists every attack the resolver would accept on the view's territories.
func (v View) LegalAttacks() []Action {
	return legalAttacks(v.Territories)
}

// Progress reports how far the player is from completing the mission.
func (v View) Progress() MissionProgress {
	return missionProgress(v.Territories, v.Mission, v.Player)
}

// Owned returns the territories (1-based numbers) held by faction f.
func (v View) Owned(f Faction) []int {
	var numbers []int
	for i, t := range v.Territories {
		if t.Faction == f {
			numbers = append(numbers, i+1)
		}
	}
	return numbers
}
