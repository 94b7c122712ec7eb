package game

import "errors"

var (
	ErrInvalidTerritory   = errors.New("cannot attack: invalid territory")
	ErrSelfAttack         = errors.New("cannot attack: a territory cannot attack itself")
	ErrInsufficientTroops = errors.New("cannot attack: not enough troops to attack")
	ErrAlreadyConquered   = errors.New("cannot attack: defender has already been conquered")
)

var rejections = []error{ErrInvalidTerritory, ErrSelfAttack, ErrInsufficientTroops, ErrAlreadyConquered}

// IsRejection reports whether err is one of the attack validation failures.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

type Side int

const (
	AttackerSide Side = iota
	DefenderSide
)

func (s Side) String() string {
	if s == AttackerSide {
		return "attacker"
	}
	return "defender"
}

// Battle is the outcome of one resolved exchange. Indices are 0-based.
type Battle struct {
	Attacker        int
	Defender        int
	AttackerName    string
	DefenderName    string
	AttackRoll      int
	DefendRoll      int
	Winner          Side
	AttackerLosses  int
	DefenderLosses  int
	Conquered       bool
	PreviousFaction Faction // defender's faction before the battle
}

// Resolver is the only place troop counts and ownership change.
type Resolver struct {
	registry *Registry
	rules    Rules
	src      Source
}

func NewResolver(registry *Registry, rules Rules, src Source) *Resolver {
	return &Resolver{
		registry: registry,
		rules:    rules,
		src:      src,
	}
}

// Resolve rolls one die per side and applies the result. A rejected attack
// returns one of the Err* validation errors and leaves the registry untouched.
func (r *Resolver) Resolve(attackerID, defenderID int) (Battle, error) {
	if err := validateAttack(r.registry.territories, attackerID, defenderID); err != nil {
		return Battle{}, err
	}
	attacker := r.registry.at(attackerID)
	defender := r.registry.at(defenderID)

	battle := Battle{
		Attacker:        attackerID,
		Defender:        defenderID,
		AttackerName:    attacker.Name,
		DefenderName:    defender.Name,
		AttackRoll:      rollDie(r.src, r.rules.DieSides()),
		DefendRoll:      rollDie(r.src, r.rules.DieSides()),
		PreviousFaction: defender.Faction,
	}

	attackerLosses, defenderLosses := r.rules.DetermineAttackOutcome(battle.AttackRoll, battle.DefendRoll)
	attacker.Troops -= attackerLosses
	defender.Troops -= defenderLosses
	battle.AttackerLosses = attackerLosses
	battle.DefenderLosses = defenderLosses

	if defenderLosses > 0 {
		battle.Winner = AttackerSide
	} else {
		battle.Winner = DefenderSide
	}

	if defender.Troops <= 0 {
		// Capture the territory
		defender.Faction = attacker.Faction
		defender.Troops = r.rules.OccupyingTroops()
		attacker.Troops -= r.rules.ConquestCost()
		battle.AttackerLosses += r.rules.ConquestCost()
		battle.Conquered = true
	}

	return battle, nil
}

func validateAttack(territories []Territory, attackerID, defenderID int) error {
	n := len(territories)
	if attackerID < 0 || attackerID >= n || defenderID < 0 || defenderID >= n {
		return ErrInvalidTerritory
	}
	if attackerID == defenderID {
		return ErrSelfAttack
	}
	if territories[attackerID].Troops <= 1 {
		return ErrInsufficientTroops
	}
	if territories[defenderID].Troops == 0 {
		return ErrAlreadyConquered
	}
	return nil
}

// LegalAttacks returns every attack on the registry that would not be rejected.
func LegalAttacks(registry *Registry) []Action {
	return legalAttacks(registry.territories)
}

func legalAttacks(territories []Territory) []Action {
	var moves []Action
	for from := range territories {
		for to := range territories {
			if validateAttack(territories, from, to) == nil {
				moves = append(moves, Attack(from+1, to+1))
			}
		}
	}
	return moves
}
