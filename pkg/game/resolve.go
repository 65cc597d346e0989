package game

// Resolve computes the status of the board node.
//
// Depth 0: a full line of one player's marks wins, a full grid with no line is
// drawn, anything else is in progress. Depth > 0: the same 8-line check runs
// over the virtual marks of the sub-boards; with no line win the board is
// drawn once every sub-board is decided, and in progress otherwise.
//
// Policy: a board is won the instant a line of already-decided sub-boards
// matches, even while sibling sub-boards are still in progress. Play stops
// there; the undecided siblings are never filled in.
//
// Resolve is a pure function of the subtree. The masks it reads are a
// memoization maintained by ApplyMark, recomputed deterministically from the
// children, so resolving an unchanged tree twice yields the same result.
func (b *Board) Resolve() Status {
	if lineWin(b.x) {
		return WonX
	}
	if lineWin(b.o) {
		return WonO
	}
	if b.x|b.o|b.drawn == fullMask {
		return Drawn
	}
	return InProgress
}
