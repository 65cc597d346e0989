package game

import "fmt"

// GameState is the root board plus the mark of the player to move next.
// LastMove is the most recently committed move (zero value before the first
// move); the pondering player uses it to re-root its search tree.
//
// States are immutable: Apply returns a new state and never touches the
// receiver, so a state handed to a player is safe to share.
type GameState struct {
	Board    *Board
	Turn     Mark
	LastMove MovePath
}

// NewGameState creates an empty game at the given nesting depth, X to move.
func NewGameState(depth int) *GameState {
	return &GameState{
		Board: NewBoard(depth),
		Turn:  PlayerX,
	}
}

// Depth returns the nesting depth of the game.
func (s *GameState) Depth() int {
	return s.Board.Depth()
}

// Status resolves the root board.
func (s *GameState) Status() Status {
	return s.Board.Resolve()
}

// Apply plays the move for the side to move and returns the resulting state.
// Fails with ErrInvalidPath or ErrIllegalMove, leaving the receiver unchanged.
func (s *GameState) Apply(path MovePath) (*GameState, error) {
	board, err := s.Board.ApplyMark(path, s.Turn)
	if err != nil {
		return nil, fmt.Errorf("apply %s for %s: %w", path, s.Turn, err)
	}

	return &GameState{
		Board:    board,
		Turn:     s.Turn.Other(),
		LastMove: path,
	}, nil
}
