package mcts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits(t *testing.T) {
	t.Run("defaults are infinite", func(t *testing.T) {
		limits := DefaultLimits()
		assert.True(t, limits.Infinite)
		assert.Equal(t, DefaultCyclesLimit, limits.Cycles)
		assert.Equal(t, DefaultMovetimeLimit, limits.Movetime)
	})

	t.Run("setting a bound clears infinite", func(t *testing.T) {
		assert.False(t, DefaultLimits().SetCycles(100).Infinite)
		assert.False(t, DefaultLimits().SetMovetime(50).Infinite)
	})
}

func TestLimiter_Ok(t *testing.T) {
	t.Run("cycle limit", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.SetLimits(DefaultLimits().SetCycles(10))
		limiter.Reset()

		assert.True(t, limiter.Ok(9))
		assert.False(t, limiter.Ok(10))
	})

	t.Run("infinite ignores cycle counts", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.Reset()
		assert.True(t, limiter.Ok(1<<30))
	})

	t.Run("stop flag wins over everything", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.Reset()
		limiter.SetStop(true)
		assert.False(t, limiter.Ok(0))
	})

	t.Run("movetime expires", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.SetLimits(DefaultLimits().SetMovetime(10))
		limiter.Reset()

		require.True(t, limiter.Ok(0))
		time.Sleep(20 * time.Millisecond)
		assert.False(t, limiter.Ok(0))
	})

	t.Run("context cancellation sets the stop flag", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		limiter := NewLimiter()
		limiter.SetContext(ctx)
		limiter.Reset()

		require.True(t, limiter.Ok(0))
		cancel()
		assert.False(t, limiter.Ok(0))
		assert.True(t, limiter.Stop())
	})
}

func TestLimiter_EvaluateStopReason(t *testing.T) {
	t.Run("cycle limit reached", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.SetLimits(DefaultLimits().SetCycles(10))
		limiter.Reset()

		limiter.EvaluateStopReason(10)
		assert.Equal(t, StopCycles, limiter.StopReason())
	})

	t.Run("interrupt", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.Reset()
		limiter.SetStop(true)

		limiter.EvaluateStopReason(5)
		assert.Equal(t, StopInterrupt, limiter.StopReason())
	})

	t.Run("reset clears the reason", func(t *testing.T) {
		limiter := NewLimiter()
		limiter.Reset()
		limiter.SetStop(true)
		limiter.EvaluateStopReason(0)
		require.NotEqual(t, StopNone, limiter.StopReason())

		limiter.Reset()
		assert.Equal(t, StopNone, limiter.StopReason())
		assert.False(t, limiter.Stop())
	})
}

func TestStopReason_String(t *testing.T) {
	assert.Equal(t, "None", StopNone.String())
	assert.Equal(t, "Interrupt", StopInterrupt.String())
	assert.Equal(t, "Movetime|Cycles", (StopMovetime | StopCycles).String())
}
