package searcher

import "math"

// Hyperparameters for MCTS

const (
	// DefaultExploration is the UCB1 exploration constant.
	DefaultExploration = 0.5
	// DefaultRaveExploration is the exploration constant when RAVE blending
	// is enabled.
	DefaultRaveExploration = math.Sqrt2
	// DefaultRaveBudget stands in for the simulation budget in the RAVE beta
	// schedule when the search runs on wall-clock time alone.
	DefaultRaveBudget = 1000
	// DefaultThreads is the worker count for root-parallel search.
	DefaultThreads = 4
)
