package engine

import (
	"errors"
	"fmt"
	"io"
	"war/game"
)

type renderer struct {
	w io.Writer
}

func (r renderer) state(view game.View) {
	fmt.Fprintln(r.w, "\n=== Current Map ===")
	for i, t := range view.Territories {
		fmt.Fprintf(r.w, "Territory %d: %s (%s) - %d troops\n", i+1, t.Name, t.Faction, t.Troops)
	}

	fmt.Fprintln(r.w, "\n=== Mission ===")
	fmt.Fprintln(r.w, view.Mission)
	fmt.Fprintln(r.w, progressLine(view.Mission, view.Progress()))
}

func progressLine(mission game.Mission, progress game.MissionProgress) string {
	if mission.Kind == game.EliminateFaction {
		return fmt.Sprintf("Territories still held by %s: %d", mission.Target, progress.Current)
	}
	return fmt.Sprintf("Territories held: %d/%d", progress.Current, progress.Goal)
}

func (r renderer) battle(b game.Battle) {
	fmt.Fprintf(r.w, "Battle: %s (attack: %d) vs %s (defense: %d)\n", b.AttackerName, b.AttackRoll, b.DefenderName, b.DefendRoll)
	if b.Winner == game.AttackerSide {
		fmt.Fprintf(r.w, "Attacker wins! %s loses 1 troop.\n", b.DefenderName)
		if b.Conquered {
			fmt.Fprintf(r.w, "%s was conquered by %s!\n", b.DefenderName, b.AttackerName)
		}
		return
	}
	fmt.Fprintf(r.w, "Defender wins! %s loses 1 troop.\n", b.AttackerName)
}

func (r renderer) rejection(err error) {
	fmt.Fprintf(r.w, "Error: %s\n", rejectionMessage(err))
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidTerritory):
		return "Invalid territories!"
	case errors.Is(err, game.ErrSelfAttack):
		return "A territory cannot attack itself!"
	case errors.Is(err, game.ErrInsufficientTroops):
		return "The attacker does not have enough troops!"
	case errors.Is(err, game.ErrAlreadyConquered):
		return "The defender has already been conquered!"
	default:
		return err.Error()
	}
}

func (r renderer) missionCheck(satisfied bool) {
	if satisfied {
		fmt.Fprintln(r.w, "Congratulations! You completed the mission and won the game!")
		return
	}
	fmt.Fprintln(r.w, "You have not completed the mission yet.")
}

func (r renderer) invalidOption() {
	fmt.Fprintln(r.w, "Invalid option!")
}

func (r renderer) farewell(reason Reason) {
	switch reason {
	case Quit, InputClosed:
		fmt.Fprintln(r.w, "Thanks for playing! See you next time!")
	case TurnLimit:
		fmt.Fprintln(r.w, "Turn limit reached. The game ends without a winner.")
	}
}
