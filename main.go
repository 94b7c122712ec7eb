package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"war/config"
	"war/engine"
	"war/experiments"
	"war/game"
	"war/player"
	"war/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "war: %v\n", err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Seed == 0 {
		cfg.Seed, err = utils.NewSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed random source")
		}
	}
	log.Debug().Int64("seed", cfg.Seed).Str("mode", cfg.Mode).Msg("starting")

	switch cfg.Mode {
	case config.ModeSimulate:
		err = simulate(ctx, cfg)
	default:
		err = play(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func play(ctx context.Context, cfg config.Config) error {
	src := game.NewSource(cfg.Seed)
	human := player.NewHuman(os.Stdin, os.Stdout)
	e, err := engine.NewStandardGame(src, cfg.Player, human, os.Stdout, engine.WithMaxTurns(cfg.MaxTurns))
	if err != nil {
		return err
	}
	_, err = e.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout)
		return nil
	}
	return err
}

func simulate(ctx context.Context, cfg config.Config) error {
	records, err := experiments.RunSimulation(ctx, experiments.SimulationConfig{
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Player:   cfg.Player,
		MaxTurns: cfg.MaxTurns,
		OutDir:   cfg.OutDir,
	})
	if err != nil {
		return err
	}

	summary := experiments.Summarize(records)
	fmt.Printf("Simulated %d games as %s: %d won (%.1f%%)\n", summary.Games, cfg.Player, summary.Wins, summary.WinRate()*100)
	for _, kind := range []game.MissionKind{game.EliminateFaction, game.HoldCount} {
		s := summary.ByMission[kind]
		fmt.Printf("  %-9s %d/%d\n", kind, s.Wins, s.Games)
	}
	return nil
}
