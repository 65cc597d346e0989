package game

import "errors"

var (
	// ErrInvalidPath - malformed move path: wrong length or out-of-range index. Always a caller bug.
	ErrInvalidPath = errors.New("invalid move path")
	// ErrIllegalMove - well-formed path targeting an occupied cell or a decided sub-board.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoLegalMoves - a player was asked to move on a terminal state.
	ErrNoLegalMoves = errors.New("no legal moves")
)
