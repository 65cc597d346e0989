package mcts

// Node of the search tree. The whole tree is owned by exactly one goroutine
// (the caller of Search, or the pondering worker), so the counters are plain
// fields; the invariant "parent visits >= any child's visits" is kept by
// backpropagation.
type Node[T MoveLike] struct {
	Move     T
	Parent   *Node[T]
	Children []Node[T]
	expanded bool
	terminal bool

	n int32
	q float64
}

func newRootNode[T MoveLike](terminal bool) *Node[T] {
	return &Node[T]{terminal: terminal}
}

// NewNode creates a child node for the given move; terminal marks a move
// that ends the game.
func NewNode[T MoveLike](parent *Node[T], move T, terminal bool) Node[T] {
	return Node[T]{
		Move:     move,
		Parent:   parent,
		terminal: terminal,
	}
}

// N is the visit count of this node.
func (node *Node[T]) N() int32 {
	return node.n
}

// Q is the accumulated reward sum, from the perspective of the player
// who moved into this node.
func (node *Node[T]) Q() float64 {
	return node.q
}

// AvgQ is the mean reward per visit; callers check N() first.
func (node *Node[T]) AvgQ() Result {
	return Result(node.q) / Result(node.n)
}

// record adds one rollout outcome to the node.
func (node *Node[T]) record(result Result) {
	node.n++
	node.q += float64(result)
}

func (node *Node[T]) Terminal() bool {
	return node.terminal
}

// Expanded reports whether the node's children were already materialized.
func (node *Node[T]) Expanded() bool {
	return node.expanded
}
