package players

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
)

// Human reads moves from a console-like stream as slash separated cell
// indices, root first (e.g. "4/8" on a depth 1 board). Malformed or illegal
// input is rejected with a message and the prompt repeats; bad input is never
// fatal to the match.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Human) ChooseMove(ctx context.Context, state *game.GameState) (game.MovePath, error) {
	if state.Status().Decided() {
		return game.MovePath{}, fmt.Errorf("human player: %w", game.ErrNoLegalMoves)
	}

	fmt.Fprintf(p.out, "%s\n", state.Board)

	for {
		if err := ctx.Err(); err != nil {
			return game.MovePath{}, err
		}

		fmt.Fprintf(p.out, "%s to move, enter %d slash-separated cell indices (e.g. %s): ",
			state.Turn, state.Depth()+1, examplePath(state.Depth()))

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return game.MovePath{}, fmt.Errorf("human player: reading input: %w", err)
			}
			return game.MovePath{}, fmt.Errorf("human player: input closed: %w", io.EOF)
		}

		move, err := game.ParseMovePath(p.scanner.Text())
		if err != nil {
			fmt.Fprintf(p.out, "invalid input: %v\n", err)
			continue
		}
		if move.Len() != state.Depth()+1 {
			fmt.Fprintf(p.out, "invalid input: %v: want %d indices\n", game.ErrInvalidPath, state.Depth()+1)
			continue
		}
		if !game.IsLegal(state, move) {
			fmt.Fprintf(p.out, "%v: %s\n", game.ErrIllegalMove, move)
			continue
		}
		return move, nil
	}
}

// examplePath renders a readable sample move like "4/8" for the prompt.
func examplePath(depth int) string {
	indices := make([]int, depth+1)
	for i := range indices {
		indices[i] = (i*4 + 4) % game.Cells
	}
	return game.MustMovePath(indices...).String()
}
