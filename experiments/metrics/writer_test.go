package metrics

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"war/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	err = w.WriteGameRecords([]GameRecord{{
		ID:   1,
		Seed: 42,
		GameMetric: GameMetric{
			Player:  game.Green,
			Mission: game.Mission{Kind: game.EliminateFaction, Target: game.Red},
			Outcome: "won",
			Turns:   9,
			Attacks: 8,
		},
	}})
	require.NoError(t, err)

	err = w.WriteBattleRecords([]BattleRecord{{
		Game: 1,
		BattleMetric: BattleMetric{Turn: 3, Battle: game.Battle{
			AttackerName:    "Highgarden",
			DefenderName:    "Casterly Rock",
			AttackRoll:      5,
			DefendRoll:      2,
			Winner:          game.AttackerSide,
			Conquered:       true,
			PreviousFaction: game.Red,
		}},
	}})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "id", games[0][0])
	require.Equal(t, []string{"1", "42", "Green", "Destroy the Red army", "won", "9", "8"}, games[1][:7])

	battles := readCSV(t, filepath.Join(w.Dir(), "battles.csv"))
	require.Equal(t, [][]string{
		{"game", "turn", "attacker", "defender", "attack_roll", "defend_roll", "winner", "conquered", "previous_faction"},
		{"1", "3", "Highgarden", "Casterly Rock", "5", "2", "attacker", "true", "Red"},
	}, battles)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSVReportsFlushErrors(t *testing.T) {
	err := writeCSV(failingWriter{}, []string{"game"}, [][]string{{"1"}})
	require.ErrorContains(t, err, "disk full")
}

func TestWriterMissingDirectory(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	err = w.WriteGameRecords(nil)
	require.ErrorContains(t, err, "games.csv")
}
