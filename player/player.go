package player

import (
	"context"
	"war/game"
)

// Controller chooses the player's next action from the current view.
type Controller interface {
	NextAction(ctx context.Context, view game.View) (game.Action, error)
}

// Pauser is implemented by controllers that want a pause after each resolved action.
type Pauser interface {
	Pause(ctx context.Context) error
}

// Random is an autopilot for the human side. It attacks at random until the
// mission is met or no useful attack is left, then quits.
type Random struct {
	src game.Source
}

func NewRandom(src game.Source) *Random {
	return &Random{src: src}
}

func (r *Random) NextAction(ctx context.Context, view game.View) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}
	if view.Satisfied() {
		return game.Action{Type: game.CheckMissionAction}, nil
	}

	possibleActions := r.generatePossibleActions(view)
	if len(possibleActions) == 0 {
		return game.Action{Type: game.QuitAction}, nil
	}
	return possibleActions[r.src.Intn(len(possibleActions))], nil
}

// generatePossibleActions keeps the attacks that move the mission forward,
// preferring the ones launched from the player's own territories.
func (r *Random) generatePossibleActions(view game.View) []game.Action {
	var own, useful []game.Action
	for _, a := range view.LegalAttacks() {
		from := view.Territories[a.From-1]
		to := view.Territories[a.To-1]
		if from.Faction == to.Faction || !advancesMission(view, to) {
			continue
		}
		useful = append(useful, a)
		if from.Faction == view.Player {
			own = append(own, a)
		}
	}
	if len(own) > 0 {
		return own
	}
	return useful
}

func advancesMission(view game.View, target game.Territory) bool {
	if view.Mission.Kind == game.EliminateFaction {
		return target.Faction == view.Mission.Target
	}
	return target.Faction != view.Player
}
