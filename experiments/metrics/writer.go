package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID   int
	Seed int64
	GameMetric
}

type BattleRecord struct {
	Game int // GameRecord.ID
	BattleMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder under dir for this run's records.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "player", "mission", "outcome", "turns", "attacks", "attacker_wins", "defender_wins", "conquests", "rejections", "checks", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatInt(record.Seed, 10),
			record.Player.String(),
			record.Mission.String(),
			record.Outcome,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.AttackerWins),
			strconv.Itoa(record.DefenderWins),
			strconv.Itoa(record.Conquests),
			strconv.Itoa(record.Rejections),
			strconv.Itoa(record.Checks),
			record.Duration.String(),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	header := []string{"game", "turn", "attacker", "defender", "attack_roll", "defend_roll", "winner", "conquered", "previous_faction"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			record.AttackerName,
			record.DefenderName,
			strconv.Itoa(record.AttackRoll),
			strconv.Itoa(record.DefendRoll),
			record.Winner.String(),
			strconv.FormatBool(record.Conquered),
			record.PreviousFaction.String(),
		})
	}
	return w.write("battles.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}

	if err := writeCSV(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	return nil
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	// Write header
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}
