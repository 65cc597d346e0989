package mcts

import (
	"math"
	"time"
)

// Exploration parameter used in the UCT formula, higher values increase
// exploration while lower values increase exploitation. Defaults to sqrt(2).
var ExplorationParam float64 = math.Sqrt2

// Set the exploration parameter used in the UCT formula
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the random number generators in MCTS,
// by default uses current time in nanoseconds. Fix the seed to make searches
// reproducible in tests.
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
