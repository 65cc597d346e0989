package arena

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/mcts"
	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/players"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedSeed(t *testing.T) {
	t.Helper()
	previous := mcts.SeedGeneratorFn
	mcts.SetSeedGeneratorFn(func() int64 { return 42 })
	t.Cleanup(func() { mcts.SetSeedGeneratorFn(previous) })
}

func randomFactory() players.Player {
	return players.NewRandom()
}

func TestArena_Run(t *testing.T) {
	fixedSeed(t)

	t.Run("totals add up", func(t *testing.T) {
		a := New(discardLogger(), 0, 6, randomFactory, randomFactory)

		require.NoError(t, a.Run(context.Background()))

		assert.Equal(t, 6, a.Total())
		assert.Equal(t, a.Total(), a.P1Wins()+a.P2Wins()+a.Draws())
		assert.Equal(t, a.P1Wins()+a.P2Wins(), a.FirstToMoveWins()+a.SecondToMoveWins())
	})

	t.Run("summary mirrors the tallies", func(t *testing.T) {
		a := New(discardLogger(), 0, 4, randomFactory, randomFactory).
			WithNames("alice", "bob")
		require.NoError(t, a.Run(context.Background()))

		s := a.Summary()
		assert.Equal(t, 4, s.TotalGames)
		assert.Equal(t, a.P1Wins(), s.P1Wins)
		assert.Equal(t, a.P2Wins(), s.P2Wins)
		assert.Equal(t, a.Draws(), s.Draws)
		assert.Equal(t, "alice", s.P1Name)
		assert.Equal(t, "bob", s.P2Name)
	})

	t.Run("mcts beats random on the plain board", func(t *testing.T) {
		search := func() players.Player { return players.NewMonteCarloSync(500) }
		a := New(discardLogger(), 0, 4, search, randomFactory)

		require.NoError(t, a.Run(context.Background()))
		assert.Greater(t, a.P1Wins()+a.Draws(), a.P2Wins())
	})

	t.Run("canceled context stops the series", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		a := New(discardLogger(), 0, 10, randomFactory, randomFactory)
		require.ErrorIs(t, a.Run(ctx), context.Canceled)
		assert.Zero(t, a.Total())
	})

	t.Run("at least one game even when asked for zero", func(t *testing.T) {
		a := New(discardLogger(), 0, 0, randomFactory, randomFactory)
		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, 1, a.Total())
	})
}

func TestStats_Record(t *testing.T) {
	var s Stats

	s.record(Pl1Win, true)   // p1 won moving first
	s.record(Pl1Win, false)  // p1 won moving second
	s.record(Pl2Win, true)   // p2 won moving second
	s.record(Draw, true)

	assert.Equal(t, 2, s.P1Wins())
	assert.Equal(t, 1, s.P2Wins())
	assert.Equal(t, 1, s.Draws())
	assert.Equal(t, 1, s.FirstToMoveWins())
	assert.Equal(t, 2, s.SecondToMoveWins())
	assert.Equal(t, 4, s.Total())
}
