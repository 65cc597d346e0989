package mcts

import "math"

// UCB1 selects the child maximizing meanReward + C * sqrt(ln(parentVisits) /
// childVisits). Unvisited children count as untried moves and are returned
// immediately, in enumeration order; exact ties on the UCT value also go to
// the first-encountered child, which keeps seeded searches deterministic.
func UCB1[T MoveLike](parent *Node[T]) *Node[T] {
	best := float64(-1)
	index := 0
	lnParentVisits := math.Log(float64(parent.N()))

	for i := 0; i < len(parent.Children); i++ {
		child := &parent.Children[i]
		if child.n == 0 {
			return child
		}

		// UCT: exploitation + exploration
		ucb1 := child.q/float64(child.n) +
			ExplorationParam*math.Sqrt(lnParentVisits/float64(child.n))

		if ucb1 > best {
			best = ucb1
			index = i
		}
	}

	return &parent.Children[index]
}
