package players

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
)

// Random samples uniformly from the legal moves.
type Random struct {
	random *rand.Rand
}

func NewRandom() *Random {
	return &Random{random: rand.New(rand.NewSource(mcts.SeedGeneratorFn()))}
}

func (p *Random) ChooseMove(_ context.Context, state *game.GameState) (game.MovePath, error) {
	moves := game.LegalMoveList(state)
	if len(moves) == 0 {
		return game.MovePath{}, fmt.Errorf("random player: %w", game.ErrNoLegalMoves)
	}
	return moves[p.random.Intn(len(moves))], nil
}
