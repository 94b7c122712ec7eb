package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"war/experiments/metrics"
	"war/game"
	"war/player"

	"github.com/rs/zerolog/log"
)

// Reason tells why a game ended.
type Reason int

const (
	Won Reason = iota
	Quit
	TurnLimit
	InputClosed
)

func (r Reason) String() string {
	switch r {
	case Won:
		return "won"
	case Quit:
		return "quit"
	case TurnLimit:
		return "turn_limit"
	case InputClosed:
		return "input_closed"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

type Result struct {
	Reason  Reason
	Turns   int
	Mission game.Mission
	Player  game.Faction
	Metric  metrics.GameMetric
}

type Option func(e *Engine)

// WithMaxTurns ends the game after n actions. Zero means no limit.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

type Engine struct {
	registry   *game.Registry
	mission    game.Mission
	player     game.Faction
	resolver   *game.Resolver
	controller player.Controller
	render     renderer
	maxTurns   int
	metrics    metrics.Collector
}

func New(registry *game.Registry, mission game.Mission, playerFaction game.Faction, resolver *game.Resolver, controller player.Controller, out io.Writer, options ...Option) *Engine {
	if out == nil {
		out = io.Discard
	}
	e := &Engine{
		registry:   registry,
		mission:    mission,
		player:     playerFaction,
		resolver:   resolver,
		controller: controller,
		render:     renderer{w: out},
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// NewStandardGame sets up the standard map, draws a mission and wires the
// resolver, all from the one random source.
func NewStandardGame(src game.Source, playerFaction game.Faction, controller player.Controller, out io.Writer, options ...Option) (*Engine, error) {
	if !playerFaction.Valid() {
		return nil, fmt.Errorf("cannot start game: unknown player faction %d", int(playerFaction))
	}
	registry, err := game.NewStandardRegistry()
	if err != nil {
		return nil, fmt.Errorf("cannot start game: %w", err)
	}
	mission := game.NewMissionGenerator(src, registry.Factions()).Generate()
	resolver := game.NewResolver(registry, game.NewStandardRules(), src)
	return New(registry, mission, playerFaction, resolver, controller, out, options...), nil
}

func (e *Engine) Mission() game.Mission {
	return e.mission
}

func (e *Engine) Registry() *game.Registry {
	return e.registry
}

// Run executes the game loop until the mission is met, the player quits,
// input runs out or the turn limit is reached.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	result := Result{Mission: e.mission, Player: e.player}
	e.metrics.Start(e.player, e.mission)

	log.Info().Msgf("player %s starts with mission %q", e.player, e.mission)

	turn := 0
	for {
		if err := ctx.Err(); err != nil {
			result.Turns = turn
			result.Metric = e.metrics.Complete("cancelled", turn)
			return result, err
		}
		if e.maxTurns > 0 && turn >= e.maxTurns {
			result.Reason = TurnLimit
			break
		}

		view := e.view()
		e.render.state(view)

		action, err := e.controller.NextAction(ctx, view)
		if errors.Is(err, io.EOF) {
			result.Reason = InputClosed
			break
		}
		if err != nil {
			result.Turns = turn
			result.Metric = e.metrics.Complete("error", turn)
			return result, fmt.Errorf("next action: %w", err)
		}
		turn++

		done := false
		switch action.Type {
		case game.AttackAction:
			e.attack(turn, action)
		case game.CheckMissionAction:
			if e.checkMission() {
				result.Reason = Won
				done = true
			}
		case game.QuitAction:
			result.Reason = Quit
			done = true
		default:
			e.render.invalidOption()
		}
		if done {
			break
		}
		if err := e.pause(ctx); err != nil {
			result.Turns = turn
			result.Metric = e.metrics.Complete("error", turn)
			return result, err
		}
	}

	result.Turns = turn
	result.Metric = e.metrics.Complete(result.Reason.String(), turn)
	e.render.farewell(result.Reason)

	log.Info().Msgf("game over after %d turns: %s", turn, result.Reason)
	return result, nil
}

// attack translates the 1-based territory numbers of the action before resolving it.
func (e *Engine) attack(turn int, action game.Action) {
	battle, err := e.resolver.Resolve(action.From-1, action.To-1)
	if err != nil {
		log.Debug().Err(err).Int("from", action.From).Int("to", action.To).Msg("attack rejected")
		e.metrics.AddRejection(err)
		e.render.rejection(err)
		return
	}

	log.Debug().
		Str("attacker", battle.AttackerName).
		Str("defender", battle.DefenderName).
		Int("attack_roll", battle.AttackRoll).
		Int("defend_roll", battle.DefendRoll).
		Bool("conquered", battle.Conquered).
		Msg("battle resolved")
	e.metrics.AddBattle(turn, battle)
	e.render.battle(battle)
}

func (e *Engine) checkMission() bool {
	satisfied := game.IsSatisfied(e.registry, e.mission, e.player)
	e.metrics.AddCheck(satisfied)
	e.render.missionCheck(satisfied)
	return satisfied
}

func (e *Engine) pause(ctx context.Context) error {
	if p, ok := e.controller.(player.Pauser); ok {
		return p.Pause(ctx)
	}
	return nil
}

func (e *Engine) view() game.View {
	return game.View{
		Territories: e.registry.Snapshot(),
		Mission:     e.mission,
		Player:      e.player,
	}
}
