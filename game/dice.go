package game

import "golang.org/x/exp/rand"

// NewSource returns a seeded pseudo-random source. The same seed replays the same game.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(uint64(seed)))
}

// Sequence is a Source replaying fixed values, cycling once exhausted.
// Each value is reduced modulo n, so a die roll of r is scripted as r-1.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.next
}

func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
