package players

import (
	"fmt"
	"math/rand"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
)

// metaOps binds the meta tic-tac-toe rules to the search tree. Because game
// states are persistent, the traversal cursor is a plain stack of state
// pointers: Traverse pushes the successor, BackTraverse pops, and rollouts
// just chase successors without any undo bookkeeping.
type metaOps struct {
	states []*game.GameState // states[0] is the search root
	random *rand.Rand
}

var _ mcts.RandGameOperations[game.MovePath] = (*metaOps)(nil)

func newMetaOps(root *game.GameState) *metaOps {
	return &metaOps{
		states: []*game.GameState{root},
		random: rand.New(rand.NewSource(mcts.SeedGeneratorFn())),
	}
}

func (ops *metaOps) current() *game.GameState {
	return ops.states[len(ops.states)-1]
}

// ExpandNode attaches a child for every legal move of the current position,
// in the stable order LegalMoves yields them.
func (ops *metaOps) ExpandNode(parent *mcts.Node[game.MovePath]) uint32 {
	state := ops.current()
	moves := game.LegalMoveList(state)
	if len(moves) == 0 {
		return 0
	}

	parent.Children = make([]mcts.Node[game.MovePath], len(moves))
	for i, move := range moves {
		next, err := state.Apply(move)
		if err != nil {
			// moves come from LegalMoves, failure here is an engine bug
			panic(fmt.Sprintf("players: expanding legal move %s: %v", move, err))
		}
		parent.Children[i] = mcts.NewNode(parent, move, next.Status().Decided())
	}
	return uint32(len(moves))
}

func (ops *metaOps) Traverse(move game.MovePath) {
	next, err := ops.current().Apply(move)
	if err != nil {
		panic(fmt.Sprintf("players: traversing move %s: %v", move, err))
	}
	ops.states = append(ops.states, next)
}

func (ops *metaOps) BackTraverse() {
	if len(ops.states) > 1 {
		ops.states = ops.states[:len(ops.states)-1]
	}
}

func (ops *metaOps) Reset() {
	ops.states = []*game.GameState{ops.current()}
}

// Rollout plays uniformly random legal moves until the game is decided and
// scores the outcome for the side to move at the current position.
func (ops *metaOps) Rollout() mcts.Result {
	state := ops.current()
	leafTurn := state.Turn

	for state.Status() == game.InProgress {
		moves := game.LegalMoveList(state)
		next, err := state.Apply(moves[ops.random.Intn(len(moves))])
		if err != nil {
			panic(fmt.Sprintf("players: rollout move failed: %v", err))
		}
		state = next
	}

	// leafTurn is the side to move at the leaf, so a win for it means the
	// player who moved into the leaf lost; the backpropagation flips this
	// once before recording it on the leaf node.
	switch state.Status() {
	case game.WonBy(leafTurn):
		return 1.0
	case game.Drawn:
		return 0.5
	default:
		return 0.0
	}
}

func (ops *metaOps) SetRand(random *rand.Rand) {
	ops.random = random
}
