package players

import (
	"context"
	"fmt"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
)

// MonteCarloSync runs a fixed-iteration MCTS from scratch on every turn,
// blocking the caller until the budget is spent. The search tree is private
// to the call and discarded afterwards.
type MonteCarloSync struct {
	iterations uint32
	listener   *mcts.StatsListener[game.MovePath]
}

func NewMonteCarloSync(iterations uint32) *MonteCarloSync {
	return &MonteCarloSync{iterations: max(1, iterations)}
}

// SetListener attaches a stats listener to every search this player runs.
func (p *MonteCarloSync) SetListener(listener mcts.StatsListener[game.MovePath]) {
	p.listener = &listener
}

func (p *MonteCarloSync) ChooseMove(ctx context.Context, state *game.GameState) (game.MovePath, error) {
	if state.Status().Decided() {
		return game.MovePath{}, fmt.Errorf("sync mcts player: %w", game.ErrNoLegalMoves)
	}

	tree := mcts.NewTree[game.MovePath](newMetaOps(state), false)
	tree.SetLimits(mcts.DefaultLimits().SetCycles(p.iterations))
	tree.SetContext(ctx)
	if p.listener != nil {
		tree.SetListener(*p.listener)
	}

	tree.Search()

	move := tree.RootMove()
	if move.Len() == 0 {
		if err := ctx.Err(); err != nil {
			return game.MovePath{}, err
		}
		return game.MovePath{}, fmt.Errorf("sync mcts player: %w", game.ErrNoLegalMoves)
	}
	return move, nil
}
