package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFaction(t *testing.T) {
	for _, f := range AllFactions() {
		got, err := ParseFaction(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := ParseFaction("  yELLow ")
	require.NoError(t, err)
	require.Equal(t, Yellow, got, "Parsing should ignore case and surrounding space")

	_, err = ParseFaction("purple")
	require.Error(t, err)
	_, err = ParseFaction("")
	require.Error(t, err, "The empty name is not a faction")
}

func TestFactionText(t *testing.T) {
	var f Faction
	require.NoError(t, f.UnmarshalText([]byte("red")))
	require.Equal(t, Red, f)

	text, err := f.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Red", string(text))

	_, err = NoFaction.MarshalText()
	require.Error(t, err)
	require.Error(t, f.UnmarshalText([]byte("nope")))
	require.Equal(t, Red, f, "A failed parse should leave the value unchanged")
	require.Equal(t, "Faction(9)", Faction(9).String())
}
