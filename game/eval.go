package game

// IsSatisfied reports whether the player has completed the mission. It never changes the registry.
func IsSatisfied(registry *Registry, mission Mission, player Faction) bool {
	return missionSatisfied(registry.territories, mission, player)
}

// MissionProgress is Current out of Goal. For elimination missions Current
// counts the territories the target still holds and Goal is zero.
type MissionProgress struct {
	Current int
	Goal    int
}

func (p MissionProgress) Done(kind MissionKind) bool {
	if kind == EliminateFaction {
		return p.Current <= p.Goal
	}
	return p.Current >= p.Goal
}

// Progress tallies the territories relevant to the mission.
func Progress(registry *Registry, mission Mission, player Faction) MissionProgress {
	return missionProgress(registry.territories, mission, player)
}

func missionSatisfied(territories []Territory, mission Mission, player Faction) bool {
	return missionProgress(territories, mission, player).Done(mission.Kind)
}

func missionProgress(territories []Territory, mission Mission, player Faction) MissionProgress {
	switch mission.Kind {
	case EliminateFaction:
		// A territory with no troops no longer counts for its faction
		held := 0
		for _, t := range territories {
			if t.Faction == mission.Target && t.Troops > 0 {
				held++
			}
		}
		return MissionProgress{Current: held, Goal: 0}
	default:
		return MissionProgress{Current: countOwned(territories, player), Goal: mission.Count}
	}
}
