package experiments

import (
	"context"
	"fmt"
	"io"
	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/meta"
	"war/player"

	"github.com/rs/zerolog/log"
)

type SimulationConfig struct {
	Games    int
	Seed     int64 // game i is played with Seed+i
	Player   game.Faction
	MaxTurns int
	OutDir   string // records are written only when set
}

// Summary aggregates the outcome of a batch of games.
type Summary struct {
	Games     int
	Wins      int
	ByMission map[game.MissionKind]KindSummary
}

type KindSummary struct {
	Games int
	Wins  int
}

func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// RunSimulation plays cfg.Games autopilot games one after the other.
func RunSimulation(ctx context.Context, cfg SimulationConfig) ([]metrics.GameRecord, error) {
	if cfg.Games <= 0 {
		cfg.Games = meta.GAMES
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}
	if !cfg.Player.Valid() {
		cfg.Player = game.DefaultPlayer
	}

	var writer *metrics.Writer
	if cfg.OutDir != "" {
		w, err := metrics.NewWriter(cfg.OutDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create records writer: %w", err)
		}
		writer = w
	}

	log.Info().Msgf("starting simulation of %d games as %s...", cfg.Games, cfg.Player)

	gameRecords := []metrics.GameRecord{}
	battleRecords := []metrics.BattleRecord{}
	for i := 0; i < cfg.Games; i++ {
		id := i + 1
		seed := cfg.Seed + int64(i)

		gameMetric, err := runGame(ctx, seed, cfg)
		if err != nil {
			return gameRecords, fmt.Errorf("game %d: %w", id, err)
		}
		log.Debug().Msgf("game %d of %d over: %s after %d turns", id, cfg.Games, gameMetric.Outcome, gameMetric.Turns)

		gameRecords = append(gameRecords, metrics.GameRecord{ID: id, Seed: seed, GameMetric: gameMetric})
		for _, battle := range gameMetric.Battles {
			battleRecords = append(battleRecords, metrics.BattleRecord{Game: id, BattleMetric: battle})
		}
	}

	summary := Summarize(gameRecords)
	log.Info().Msgf("finished simulation: %d/%d games won (%.1f%%)", summary.Wins, summary.Games, summary.WinRate()*100)

	if writer == nil {
		return gameRecords, nil
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteBattleRecords(battleRecords); err != nil {
		return gameRecords, fmt.Errorf("failed to write battle records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored battle records")

	return gameRecords, nil
}

// runGame plays a single autopilot game from its own seeded source.
func runGame(ctx context.Context, seed int64, cfg SimulationConfig) (metrics.GameMetric, error) {
	src := game.NewSource(seed)
	e, err := engine.NewStandardGame(src, cfg.Player, player.NewRandom(src), io.Discard,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	result, err := e.Run(ctx)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	return result.Metric, nil
}

func Summarize(records []metrics.GameRecord) Summary {
	summary := Summary{ByMission: map[game.MissionKind]KindSummary{}}
	for _, record := range records {
		won := record.Outcome == engine.Won.String()
		kind := summary.ByMission[record.Mission.Kind]
		kind.Games++
		summary.Games++
		if won {
			kind.Wins++
			summary.Wins++
		}
		summary.ByMission[record.Mission.Kind] = kind
	}
	return summary
}
