package players

import (
	"context"
	"fmt"
	"time"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
)

// How long past the think budget a move request may take before the worker is
// considered stuck. The handoff itself normally completes within one cycle.
const moveRequestGrace = time.Second

// MonteCarloAsync keeps one long-lived search tree on a background goroutine
// that ponders continuously, through the opponent's turns as well as its own.
// On its turn it lets the search run for the configured think duration, takes
// the current visit-count leader and re-roots the tree at the chosen move;
// tree reuse carries the accumulated statistics across turns.
//
// One pondering goroutine exists per player instance; Close must be called
// when the match ends. Think durations below ~100ms are unreliable because of
// the request/response latency and must not be relied upon.
type MonteCarloAsync struct {
	think  time.Duration
	ponder *mcts.Ponder[game.MovePath]
}

func NewMonteCarloAsync(think time.Duration) *MonteCarloAsync {
	return &MonteCarloAsync{think: think}
}

func (p *MonteCarloAsync) ChooseMove(ctx context.Context, state *game.GameState) (game.MovePath, error) {
	if state.Status().Decided() {
		return game.MovePath{}, fmt.Errorf("async mcts player: %w", game.ErrNoLegalMoves)
	}

	if p.ponder == nil {
		// First turn: start pondering from the current position
		p.ponder = mcts.NewPonder(mcts.NewTree[game.MovePath](newMetaOps(state), false))
	} else if state.LastMove.Len() > 0 {
		// Re-root at the opponent's committed move; pondering continues
		if err := p.ponder.Advance(state.LastMove); err != nil {
			return game.MovePath{}, fmt.Errorf("async mcts player: %w", err)
		}
	}

	// Spend the think budget pondering our own position
	timer := time.NewTimer(p.think)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
		return game.MovePath{}, ctx.Err()
	}

	reqCtx, cancel := context.WithTimeout(ctx, moveRequestGrace)
	defer cancel()

	best, err := p.ponder.RequestMove(reqCtx)
	if err != nil {
		return game.MovePath{}, fmt.Errorf("async mcts player: %w", err)
	}
	if best.Move.Len() == 0 {
		return game.MovePath{}, fmt.Errorf("async mcts player: %w", game.ErrNoLegalMoves)
	}

	// Commit our own move into the persisted tree before handing it back,
	// so pondering on the opponent's turn starts from the right root
	if err := p.ponder.Advance(best.Move); err != nil {
		return game.MovePath{}, fmt.Errorf("async mcts player: %w", err)
	}
	return best.Move, nil
}

// Close tears down the pondering goroutine and waits for it to exit.
// The player is unusable afterwards.
func (p *MonteCarloAsync) Close() error {
	if p.ponder != nil {
		p.ponder.Close()
	}
	return nil
}
