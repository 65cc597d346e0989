// Package players provides the decision-making agents of the game: a console
// human, a uniform random mover and two Monte Carlo tree search variants, one
// synchronous and one that keeps pondering on a background goroutine.
package players

import (
	"context"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
)

// Player chooses the next move for the side to move in the given state.
// The state is a read-only view; only the match orchestrator applies moves.
// Calling a player on a terminal state is a contract violation and yields
// game.ErrNoLegalMoves.
type Player interface {
	ChooseMove(ctx context.Context, state *game.GameState) (game.MovePath, error)
}
