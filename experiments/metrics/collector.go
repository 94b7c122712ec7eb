package metrics

import (
	"time"
	"war/game"
)

// BattleMetric is one resolved exchange and the turn it happened on.
type BattleMetric struct {
	Turn int
	game.Battle
}

type GameMetric struct {
	Player       game.Faction
	Mission      game.Mission
	Outcome      string
	Turns        int
	Attacks      int
	AttackerWins int
	DefenderWins int
	Conquests    int
	Rejections   int
	Checks       int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Battles      []BattleMetric
}

type Collector interface {
	Start(player game.Faction, mission game.Mission)
	AddBattle(turn int, battle game.Battle)
	AddRejection(err error)
	AddCheck(satisfied bool)
	Complete(outcome string, turns int) GameMetric
}

type collector struct {
	metric GameMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(player game.Faction, mission game.Mission) {
	c.metric = GameMetric{
		Player:    player,
		Mission:   mission,
		StartTime: time.Now(),
	}
}

func (c *collector) AddBattle(turn int, battle game.Battle) {
	c.metric.Attacks++
	if battle.Winner == game.AttackerSide {
		c.metric.AttackerWins++
	} else {
		c.metric.DefenderWins++
	}
	if battle.Conquered {
		c.metric.Conquests++
	}
	c.metric.Battles = append(c.metric.Battles, BattleMetric{Turn: turn, Battle: battle})
}

func (c *collector) AddRejection(err error) {
	c.metric.Rejections++
}

func (c *collector) AddCheck(satisfied bool) {
	c.metric.Checks++
}

func (c *collector) Complete(outcome string, turns int) GameMetric {
	c.metric.Outcome = outcome
	c.metric.Turns = turns
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(player game.Faction, mission game.Mission) {}
func (m *dummyCollector) AddBattle(turn int, battle game.Battle)          {}
func (m *dummyCollector) AddRejection(err error)                          {}
func (m *dummyCollector) AddCheck(satisfied bool)                         {}
func (m *dummyCollector) Complete(outcome string, turns int) GameMetric {
	return GameMetric{Outcome: outcome, Turns: turns}
}
