package mcts

import "math/rand"

// GameOperations binds a concrete game to the search tree. The tree keeps one
// internal position cursor in the operations object; Traverse/BackTraverse
// move it along the selection path and back.
type GameOperations[T MoveLike] interface {
	// Generate the legal moves of the current position and attach them as
	// children to the given node, returning the number of children created.
	// Must enumerate moves in a stable order.
	ExpandNode(parent *Node[T]) uint32
	// Play the move on the internal position
	Traverse(T)
	// Undo the last move played by Traverse; a no-op at the search root
	BackTraverse()
	// Play uniformly random legal moves from the current position until the
	// game is decided, returning the outcome for the side to move at the
	// current position. Creates no tree nodes.
	Rollout() Result
	// Make the current position the new search root, collapsing the
	// traversal history. Called after the tree is re-rooted.
	Reset()
}

// Random-based rollout
type RandGameOperations[T MoveLike] interface {
	GameOperations[T]
	// Sets the random generator
	SetRand(*rand.Rand)
}
