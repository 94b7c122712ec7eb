package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	AttackAction ActionType = iota
	CheckMissionAction
	QuitAction
)

func (a ActionType) String() string {
	switch a {
	case AttackAction:
		return "attack"
	case CheckMissionAction:
		return "check"
	case QuitAction:
		return "quit"
	default:
		return "unknown"
	}
}

// Action represents an action taken by the player.
// From and To are territory numbers as shown on the map (1-based).
type Action struct {
	Type ActionType
	From int
	To   int
}

func Attack(from, to int) Action {
	return Action{Type: AttackAction, From: from, To: to}
}
