package game

import "iter"

// LegalMoves returns a lazy, restartable sequence of every playable move:
// paths that descend only through in-progress nodes and end on an empty leaf
// cell. A terminal state yields nothing.
func LegalMoves(s *GameState) iter.Seq[MovePath] {
	return func(yield func(MovePath) bool) {
		s.Board.emptyPaths(MovePath{}, yield)
	}
}

// LegalMoveList collects LegalMoves into a slice.
func LegalMoveList(s *GameState) []MovePath {
	var moves []MovePath
	for move := range LegalMoves(s) {
		moves = append(moves, move)
	}
	return moves
}

// IsLegal reports whether the path may be played on the current state.
func IsLegal(s *GameState, path MovePath) bool {
	board := s.Board
	if path.Len() != board.depth+1 {
		return false
	}

	for level := 0; level < path.Len(); level++ {
		if board.Resolve().Decided() {
			return false
		}

		index := path.At(level)
		if board.depth == 0 {
			return board.MarkAt(index) == Empty
		}
		if board.MarkAt(index) != Empty || board.drawn&(1<<index) != 0 {
			return false
		}
		board = board.subs[index]
	}
	return false
}

// emptyPaths walks the subtree depth first, skipping decided nodes,
// and yields a full path for every empty leaf cell. Returns false once
// the consumer stops the iteration.
func (b *Board) emptyPaths(prefix MovePath, yield func(MovePath) bool) bool {
	if b.Resolve().Decided() {
		return true
	}

	if b.depth == 0 {
		occupied := b.x | b.o
		for i := 0; i < Cells; i++ {
			if occupied&(1<<i) == 0 {
				if !yield(prefix.child(i)) {
					return false
				}
			}
		}
		return true
	}

	decided := b.x | b.o | b.drawn
	for i := 0; i < Cells; i++ {
		if decided&(1<<i) != 0 {
			continue
		}
		if !b.subs[i].emptyPaths(prefix.child(i), yield) {
			return false
		}
	}
	return true
}
