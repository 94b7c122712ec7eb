package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func registryOf(t *testing.T, territories ...Territory) *Registry {
	t.Helper()
	reg, err := NewRegistry(territories)
	require.NoError(t, err)
	return reg
}

func TestIsSatisfiedEliminate(t *testing.T) {
	mission := Mission{Kind: EliminateFaction, Target: Red}

	t.Run("target still holds a territory", func(t *testing.T) {
		reg := registryOf(t,
			Territory{Name: "A", Faction: Green, Troops: 5},
			Territory{Name: "B", Faction: Red, Troops: 1},
		)
		require.False(t, IsSatisfied(reg, mission, Green))
	})

	t.Run("target holds nothing", func(t *testing.T) {
		reg := registryOf(t,
			Territory{Name: "A", Faction: Green, Troops: 5},
			Territory{Name: "B", Faction: Blue, Troops: 1},
		)
		require.True(t, IsSatisfied(reg, mission, Green))
	})

	t.Run("territories without troops do not count", func(t *testing.T) {
		reg := registryOf(t,
			Territory{Name: "A", Faction: Green, Troops: 5},
			Territory{Name: "B", Faction: Red, Troops: 0},
		)
		require.True(t, IsSatisfied(reg, mission, Green))
	})

	t.Run("conquest reassigns the sole territory before the check", func(t *testing.T) {
		reg := registryOf(t,
			Territory{Name: "A", Faction: Red, Troops: 5},
			Territory{Name: "B", Faction: Blue, Troops: 1},
			Territory{Name: "C", Faction: Green, Troops: 3},
		)
		resolver := NewResolver(reg, NewStandardRules(), rolls(6, 1))

		// Red takes B with a single troop, so Red is still alive
		battle, err := resolver.Resolve(0, 1)
		require.NoError(t, err)
		require.True(t, battle.Conquered)
		require.False(t, IsSatisfied(reg, mission, Green))
		require.True(t, IsSatisfied(reg, Mission{Kind: EliminateFaction, Target: Blue}, Green))
	})
}

func TestIsSatisfiedHold(t *testing.T) {
	mission := Mission{Kind: HoldCount, Count: 3}
	territories := []Territory{
		{Name: "A", Faction: Green, Troops: 1},
		{Name: "B", Faction: Green, Troops: 1},
		{Name: "C", Faction: Red, Troops: 1},
		{Name: "D", Faction: Blue, Troops: 1},
	}

	reg := registryOf(t, territories...)
	require.False(t, IsSatisfied(reg, mission, Green), "Two territories are not enough")

	territories[2].Faction = Green
	reg = registryOf(t, territories...)
	require.True(t, IsSatisfied(reg, mission, Green), "Three territories complete the mission")

	territories[3].Faction = Green
	reg = registryOf(t, territories...)
	require.True(t, IsSatisfied(reg, mission, Green), "More than three also completes it")
	require.False(t, IsSatisfied(reg, mission, Red))
}

func TestIsSatisfiedIsReadOnly(t *testing.T) {
	reg, err := NewStandardRegistry()
	require.NoError(t, err)
	before := reg.Snapshot()

	for _, m := range []Mission{{Kind: EliminateFaction, Target: Gray}, {Kind: HoldCount, Count: 3}} {
		for i := 0; i < 3; i++ {
			require.False(t, IsSatisfied(reg, m, Green))
		}
	}
	require.Equal(t, before, reg.Snapshot())
}

func TestProgress(t *testing.T) {
	reg, err := NewStandardRegistry()
	require.NoError(t, err)

	require.Equal(t, MissionProgress{Current: 1, Goal: 3}, Progress(reg, Mission{Kind: HoldCount, Count: 3}, Green))
	require.Equal(t, MissionProgress{Current: 1, Goal: 0}, Progress(reg, Mission{Kind: EliminateFaction, Target: Red}, Green))

	view := View{Territories: reg.Snapshot(), Mission: Mission{Kind: HoldCount, Count: 1}, Player: Green}
	require.True(t, view.Satisfied())
	require.Equal(t, []int{3}, view.Owned(Green))
	require.Len(t, view.LegalAttacks(), 20, "Every territory starts with enough troops to attack the other four")
}
