package searcher

import (
	"connectfour/game"

	"golang.org/x/exp/rand"
)

// Hyperparameters for MCTS

// DefaultExploration is the UCB1 exploration weight used unless overridden.
const DefaultExploration = 2.0

// Rollout results from the Max perspective.
const (
	Win  = 1.0
	Loss = -Win
	Draw = 0.0
)

// outcome converts a terminal winner into a reward for Max.
func outcome(winner game.Cell) float64 {
	switch winner {
	case game.Max:
		return Win
	case game.Min:
		return Loss
	default:
		return Draw
	}
}

// pickUniform returns a uniformly random element. Rollout moves and UCB
// tie-breaks both go through here, so seeding the source fixes the whole
// search.
func pickUniform[T any](rng *rand.Rand, items []T) T {
	if len(items) == 0 {
		panic("searcher: pick from empty slice")
	}
	return items[rng.Intn(len(items))]
}
