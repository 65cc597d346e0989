package mcts

// Other types, which didn't fit to the Tree or Node files

// Result of a rollout, ranging over [0, 1] from the perspective of the player
// who moved into the evaluated node: 0 loss, 0.5 draw, 1 win.
type Result float64

type MoveLike comparable

// Will be called when descending the tree, to choose the most promising child to expand
type SelectionPolicy[T MoveLike] func(parent *Node[T]) *Node[T]

type SeedGeneratorFnType func() int64
