// Package arena plays a series of games between two player configurations and
// tallies the results per player identity.
package arena

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/game"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/players"
)

type Arena struct {
	Stats

	depth   int
	nGames  int
	p1Name  string
	p2Name  string
	player1 PlayerFactory
	player2 PlayerFactory
	logger  *slog.Logger
}

// New creates an arena for boards of the given nesting depth. The first mover
// alternates between games so neither player keeps the X advantage.
func New(logger *slog.Logger, depth, nGames int, p1, p2 PlayerFactory) *Arena {
	return &Arena{
		depth:   depth,
		nGames:  max(1, nGames),
		p1Name:  "player1",
		p2Name:  "player2",
		player1: p1,
		player2: p2,
		logger:  logger,
	}
}

// WithNames sets the player names used in logs and the summary.
func (a *Arena) WithNames(p1, p2 string) *Arena {
	a.p1Name = p1
	a.p2Name = p2
	return a
}

// Run plays the configured number of games sequentially, honoring the
// context between moves. Tallies accumulate in the embedded Stats.
func (a *Arena) Run(ctx context.Context) error {
	for i := 0; i < a.nGames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		p1WentFirst := i%2 == 0
		if err := a.playGame(ctx, i, p1WentFirst); err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
	}
	return nil
}

func (a *Arena) playGame(ctx context.Context, gameNum int, p1WentFirst bool) error {
	p1, p2 := a.player1(), a.player2()
	defer closePlayer(p1)
	defer closePlayer(p2)

	first, second := p1, p2
	if !p1WentFirst {
		first, second = p2, p1
	}

	state := game.NewGameState(a.depth)
	current := first
	moves := 0

	for state.Status() == game.InProgress {
		move, err := current.ChooseMove(ctx, state)
		if err != nil {
			return fmt.Errorf("move %d: %w", moves+1, err)
		}

		// Legality is enforced here; a non-human player producing an
		// illegal move is an engine invariant violation, fatal to the run.
		next, err := state.Apply(move)
		if err != nil {
			return fmt.Errorf("move %d: %w", moves+1, err)
		}

		a.logger.Debug("move committed",
			"game", gameNum+1, "move", moves+1, "path", move.String(), "by", state.Turn.String())

		state = next
		moves++
		if current == first {
			current = second
		} else {
			current = first
		}
	}

	result := a.outcome(state.Status(), p1WentFirst)
	a.record(result, p1WentFirst)
	a.logger.Info("game finished",
		"game", gameNum+1, "moves", moves, "status", state.Status().String())
	return nil
}

// outcome maps the final root status to which player won: the first mover
// always plays X.
func (a *Arena) outcome(status game.Status, p1WentFirst bool) MatchResult {
	winner := status.Winner()
	if winner == game.Empty {
		return Draw
	}

	firstMoverWon := winner == game.PlayerX
	if firstMoverWon == p1WentFirst {
		return Pl1Win
	}
	return Pl2Win
}

// Summary snapshots the tallies.
func (a *Arena) Summary() Summary {
	return Summary{
		TotalGames:       a.Total(),
		P1Wins:           a.P1Wins(),
		P2Wins:           a.P2Wins(),
		Draws:            a.Draws(),
		FirstToMoveWins:  a.FirstToMoveWins(),
		SecondToMoveWins: a.SecondToMoveWins(),
		P1Name:           a.p1Name,
		P2Name:           a.p2Name,
	}
}

func closePlayer(p players.Player) {
	if closer, ok := p.(io.Closer); ok {
		_ = closer.Close()
	}
}
