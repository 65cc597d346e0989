package players

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
)

func fixedSeed(t *testing.T) {
	t.Helper()
	previous := mcts.SeedGeneratorFn
	mcts.SetSeedGeneratorFn(func() int64 { return 42 })
	t.Cleanup(func() { mcts.SetSeedGeneratorFn(previous) })
}

// playMoves advances a state through the given move sequence, X first.
func playMoves(t *testing.T, state *game.GameState, paths ...game.MovePath) *game.GameState {
	t.Helper()
	for _, path := range paths {
		next, err := state.Apply(path)
		require.NoError(t, err, "move %s", path)
		state = next
	}
	return state
}

// oneMoveFromWin builds a depth 0 position where the side to move (X) wins
// immediately by playing cell 2.
func oneMoveFromWin(t *testing.T) *game.GameState {
	t.Helper()
	return playMoves(t, game.NewGameState(0),
		game.MustMovePath(0), game.MustMovePath(4),
		game.MustMovePath(1), game.MustMovePath(7))
}

// finishedGame builds a depth 0 position already won by X.
func finishedGame(t *testing.T) *game.GameState {
	t.Helper()
	return playMoves(t, oneMoveFromWin(t), game.MustMovePath(2))
}
