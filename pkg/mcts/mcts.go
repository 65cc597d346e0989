package mcts

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

type TreeStats struct {
	maxdepth int32
	cps      uint32
	cycles   uint32
}

// Tree is a Monte Carlo search tree over moves of type T. It is owned by a
// single goroutine at a time: Search blocks its caller, Ponder transfers
// ownership to a background worker.
type Tree[T MoveLike] struct {
	TreeStats
	listener        *StatsListener[T]
	Limiter         LimiterLike
	Root            *Node[T]
	ops             GameOperations[T]
	selectionPolicy SelectionPolicy[T]
	random          *rand.Rand
	size            uint32
}

// NewTree creates a search tree rooted at the current position of the
// operations object; terminated marks an already-decided root. The root is
// expanded immediately so that untried moves are available from the start.
func NewTree[T MoveLike](ops GameOperations[T], terminated bool) *Tree[T] {
	tree := &Tree[T]{
		listener:        &StatsListener[T]{nCycles: 1},
		Limiter:         LimiterLike(NewLimiter()),
		Root:            newRootNode[T](terminated),
		ops:             ops,
		selectionPolicy: UCB1[T],
		random:          rand.New(rand.NewSource(SeedGeneratorFn())),
	}

	// For random (light) playouts, hand the generator to the game
	if rg, ok := ops.(RandGameOperations[T]); ok {
		rg.SetRand(tree.random)
	}

	tree.size = 1
	if !terminated {
		tree.size += ops.ExpandNode(tree.Root)
		tree.Root.expanded = true
	}

	return tree
}

func (tree *Tree[T]) invokeListener(f ListenerFunc[T]) {
	if f != nil {
		f(toListenerStats(tree))
	}
}

func (tree *Tree[T]) ResetListener() {
	tree.listener.OnCycle(nil).OnDepth(nil).OnStop(nil)
}

func (tree *Tree[T]) StatsListener() *StatsListener[T] {
	return tree.listener
}

func (tree *Tree[T]) SetListener(listener StatsListener[T]) {
	*tree.listener = listener
}

// Adds custom context to the limiter, enabling cancellation through it
func (tree *Tree[T]) SetContext(ctx context.Context) {
	tree.Limiter.SetContext(ctx)
}

func (tree *Tree[T]) IsSearching() bool {
	return !tree.Limiter.Stop()
}

// Stop the search
func (tree *Tree[T]) Stop() {
	tree.Limiter.SetStop(true)
}

// Maximum depth reached during the search, note that usually MaxDepth != len(pv)
func (tree *Tree[T]) MaxDepth() int {
	return int(tree.maxdepth)
}

// Total number of selection/rollout/backpropagation cycles ran during the search
func (tree *Tree[T]) Cycles() int {
	return int(tree.cycles)
}

// Get cycles per second statistic
func (tree *Tree[T]) Cps() uint32 {
	return tree.cps
}

// Get the reason why the search was stopped, valid after search ends
func (tree *Tree[T]) StopReason() StopReason {
	return tree.Limiter.StopReason()
}

func (tree *Tree[T]) SetLimits(limits *Limits) {
	tree.Limiter.SetLimits(limits)
}

func (tree *Tree[T]) Limits() *Limits {
	return tree.Limiter.Limits()
}

func (tree *Tree[T]) String() string {
	return fmt.Sprintf("Tree={Size=%d, Stats:{maxdepth=%d, cps=%d, cycles=%d}, Stop=%v, Root=%v}",
		tree.Size(), tree.MaxDepth(), tree.Cps(), tree.Cycles(), !tree.IsSearching(), tree.Root)
}

// Helper function to count tree nodes
func countTreeNodes[T MoveLike](node *Node[T]) uint32 {
	nodes := uint32(1)
	for i := range node.Children {
		nodes += countTreeNodes(&node.Children[i])
	}
	return nodes
}

// Get the size of the tree
func (tree *Tree[T]) Size() uint32 {
	return tree.size
}

// This function only resets the counters and the stop flag,
// doesn't actually start the search
func (tree *Tree[T]) setupSearch() {
	tree.Limiter.Reset()
	tree.cps = 0
	tree.cycles = 0
	tree.maxdepth = 0
}

// Search runs the selection/expansion/rollout/backpropagation loop until the
// limiter says otherwise, blocking the caller. With a cycle limit set, exactly
// that many cycles run.
func (tree *Tree[T]) Search() {
	tree.setupSearch()

	if tree.Root.Terminal() || len(tree.Root.Children) == 0 {
		tree.Limiter.EvaluateStopReason(tree.cycles)
		tree.Limiter.SetStop(true)
		tree.invokeListener(tree.listener.onStop)
		return
	}

	for tree.Limiter.Ok(tree.cycles) {
		tree.runCycle()
	}

	tree.Limiter.EvaluateStopReason(tree.cycles)
	tree.Limiter.SetStop(true)
	tree.invokeListener(tree.listener.onStop)
}

// One full cycle: choose the most promising node, play out the game from
// there, and backpropagate the outcome to the root.
func (tree *Tree[T]) runCycle() {
	node := tree.selection()
	tree.backpropagate(node, tree.ops.Rollout())

	tree.cycles++
	tree.cps = tree.cycles * 1000 / tree.Limiter.Elapsed()
	if tree.listener.onCycle != nil && tree.cycles%uint32(tree.listener.nCycles) == 0 {
		tree.listener.onCycle(toListenerStats(tree))
	}
}

// Selects the next node to evaluate: descends via the selection policy,
// expanding a leaf that was already visited once. New children are tried in
// enumeration order.
func (tree *Tree[T]) selection() *Node[T] {
	node := tree.Root
	depth := int32(0)

	for node.expanded && len(node.Children) > 0 {
		node = tree.selectionPolicy(node)
		tree.ops.Traverse(node.Move)
		depth++
	}

	// Materialize the children of a visited leaf and descend into the
	// first untried one
	if node.n > 0 && !node.Terminal() && !node.expanded {
		tree.size += tree.ops.ExpandNode(node)
		node.expanded = true
		if len(node.Children) > 0 {
			node = &node.Children[0]
			tree.ops.Traverse(node.Move)
			depth++
		}
	}

	if depth > tree.maxdepth {
		tree.maxdepth = depth
		tree.invokeListener(tree.listener.onDepth)
	}

	return node
}

// Walk back from the evaluated node to the root, incrementing visit counts
// and adding the rollout outcome, flipped at every level (two player,
// zero sum: the parent's mover scores 1 - child result).
func (tree *Tree[T]) backpropagate(node *Node[T], result Result) {
	for node != nil {
		result = 1.0 - result
		node.record(result)
		node = node.Parent
		tree.ops.BackTraverse()
	}
}

// Return the most visited child; visit count is the robust choice, immune to
// reward noise on barely-explored children. Ties go to the first child.
func (tree *Tree[T]) BestChild(node *Node[T]) *Node[T] {
	var bestChild *Node[T]
	maxVisits := int32(0)

	for i := 0; i < len(node.Children); i++ {
		if v := node.Children[i].N(); v > maxVisits {
			maxVisits = v
			bestChild = &node.Children[i]
		}
	}

	return bestChild
}

// 'the best move' in the position; the zero value of T when the root has no
// visited children
func (tree *Tree[T]) RootMove() T {
	var move T
	if bestChild := tree.BestChild(tree.Root); bestChild != nil {
		move = bestChild.Move
	}
	return move
}

// Current evaluation of the position, from the root player's perspective
func (tree *Tree[T]) RootScore() Result {
	if bestChild := tree.BestChild(tree.Root); bestChild != nil {
		return bestChild.AvgQ()
	}
	return Result(math.NaN())
}

// Get the principal variation (ie. the best sequence of moves) from the root
func (tree *Tree[T]) Pv() []T {
	pv := make([]T, 0, tree.MaxDepth())
	node := tree.Root

	for len(node.Children) > 0 {
		node = tree.BestChild(node)
		if node == nil {
			break
		}
		pv = append(pv, node.Move)
		if node.Terminal() {
			break
		}
	}

	return pv
}

// MakeMove advances the root position by the given move. If the move is among
// the root's children the subtree is kept with all of its accumulated
// statistics (tree reuse); otherwise the old tree is discarded entirely and a
// fresh root is expanded at the new position. Returns whether the subtree was
// kept. Must only be called by the goroutine owning the tree.
func (tree *Tree[T]) MakeMove(move T) bool {
	tree.ops.Traverse(move)
	tree.ops.Reset()

	for i := range tree.Root.Children {
		if tree.Root.Children[i].Move != move {
			continue
		}

		oldRoot := tree.Root
		tree.Root = &tree.Root.Children[i]
		tree.Root.Parent = nil
		tree.size = countTreeNodes(tree.Root)
		tree.maxdepth = max(0, tree.maxdepth-1)

		// Clear the children of the old root, to make the discarded
		// siblings available for GC
		oldRoot.Children = nil

		if !tree.Root.expanded && !tree.Root.Terminal() {
			tree.size += tree.ops.ExpandNode(tree.Root)
			tree.Root.expanded = true
		}
		return true
	}

	// Move outside the explored tree: rebuild from scratch
	tree.Root = newRootNode[T](false)
	tree.size = 1 + tree.ops.ExpandNode(tree.Root)
	tree.Root.expanded = true
	tree.maxdepth = 0
	return false
}
