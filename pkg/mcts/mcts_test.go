package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nimOps implements the game of Nim for the tests: a pile of stones, each
// player takes 1 or 2, whoever takes the last stone wins. The perfect move
// leaves a multiple of 3 behind, so the expected search result is known.
type nimOps struct {
	stack  []int // stones remaining along the traversal path
	random *randSource
}

// randSource is a tiny deterministic generator so rollouts do not depend on
// the tree's seeding order.
type randSource struct {
	state uint64
}

func (r *randSource) intn(n int) int {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return int((r.state >> 33) % uint64(n))
}

func newNimOps(stones int) *nimOps {
	return &nimOps{
		stack:  []int{stones},
		random: &randSource{state: 0x9E3779B97F4A7C15},
	}
}

func (ops *nimOps) current() int {
	return ops.stack[len(ops.stack)-1]
}

func (ops *nimOps) ExpandNode(parent *Node[int]) uint32 {
	stones := ops.current()
	count := min(2, stones)

	parent.Children = make([]Node[int], 0, count)
	for take := 1; take <= count; take++ {
		parent.Children = append(parent.Children, NewNode(parent, take, stones-take == 0))
	}
	return uint32(count)
}

func (ops *nimOps) Traverse(take int) {
	ops.stack = append(ops.stack, ops.current()-take)
}

func (ops *nimOps) BackTraverse() {
	if len(ops.stack) > 1 {
		ops.stack = ops.stack[:len(ops.stack)-1]
	}
}

func (ops *nimOps) Reset() {
	ops.stack = []int{ops.current()}
}

func (ops *nimOps) Rollout() Result {
	stones := ops.current()
	if stones == 0 {
		// The previous mover took the last stone, the side to move lost
		return 0.0
	}

	turn := 0
	for stones > 0 {
		stones -= 1 + ops.random.intn(min(2, stones))
		if stones == 0 && turn == 0 {
			return 1.0
		}
		turn ^= 1
	}
	return 0.0
}

func fixedSeed(t *testing.T) {
	t.Helper()
	previous := SeedGeneratorFn
	SetSeedGeneratorFn(func() int64 { return 42 })
	t.Cleanup(func() { SetSeedGeneratorFn(previous) })
}

func TestNewTree(t *testing.T) {
	fixedSeed(t)

	t.Run("root is expanded immediately", func(t *testing.T) {
		tree := NewTree[int](newNimOps(5), false)
		require.True(t, tree.Root.Expanded())
		require.Len(t, tree.Root.Children, 2)
		assert.Equal(t, uint32(3), tree.Size())
	})

	t.Run("terminated root stays empty", func(t *testing.T) {
		tree := NewTree[int](newNimOps(0), true)
		assert.True(t, tree.Root.Terminal())
		assert.Empty(t, tree.Root.Children)
		assert.Equal(t, uint32(1), tree.Size())
	})
}

func TestTree_Search(t *testing.T) {
	fixedSeed(t)

	t.Run("runs exactly the cycle limit", func(t *testing.T) {
		tree := NewTree[int](newNimOps(5), false)
		tree.SetLimits(DefaultLimits().SetCycles(500))

		tree.Search()

		require.Equal(t, 500, tree.Cycles())
		assert.Equal(t, StopCycles, tree.StopReason()&StopCycles)

		// Every cycle descends through exactly one root child
		visits := int32(0)
		for i := range tree.Root.Children {
			visits += tree.Root.Children[i].N()
		}
		assert.Equal(t, int32(500), visits)
		assert.Equal(t, int32(500), tree.Root.N())
	})

	t.Run("finds the winning nim move", func(t *testing.T) {
		// From 5 stones, taking 2 leaves the losing pile of 3
		tree := NewTree[int](newNimOps(5), false)
		tree.SetLimits(DefaultLimits().SetCycles(2000))

		tree.Search()

		assert.Equal(t, 2, tree.RootMove())
		assert.Greater(t, float64(tree.RootScore()), 0.5)
	})

	t.Run("terminal root stops without cycles", func(t *testing.T) {
		tree := NewTree[int](newNimOps(0), true)
		tree.SetLimits(DefaultLimits().SetCycles(100))

		tree.Search()

		assert.Equal(t, 0, tree.Cycles())
		assert.Zero(t, tree.RootMove())
	})

	t.Run("same seed gives the same search", func(t *testing.T) {
		run := func() (int, Result) {
			tree := NewTree[int](newNimOps(8), false)
			tree.SetLimits(DefaultLimits().SetCycles(300))
			tree.Search()
			return tree.RootMove(), tree.RootScore()
		}

		move1, score1 := run()
		move2, score2 := run()
		assert.Equal(t, move1, move2)
		assert.Equal(t, score1, score2)
	})
}

func TestTree_MakeMove(t *testing.T) {
	fixedSeed(t)

	t.Run("keeps the chosen subtree", func(t *testing.T) {
		tree := NewTree[int](newNimOps(5), false)
		tree.SetLimits(DefaultLimits().SetCycles(1000))
		tree.Search()

		var kept *Node[int]
		for i := range tree.Root.Children {
			if tree.Root.Children[i].Move == 2 {
				kept = &tree.Root.Children[i]
			}
		}
		require.NotNil(t, kept)
		visits := kept.N()
		require.Greater(t, visits, int32(0))

		require.True(t, tree.MakeMove(2))

		assert.Equal(t, 2, tree.Root.Move)
		assert.Nil(t, tree.Root.Parent)
		assert.Equal(t, visits, tree.Root.N())
		assert.Equal(t, countTreeNodes(tree.Root), tree.Size())
	})

	t.Run("re-rooted tree keeps searching", func(t *testing.T) {
		tree := NewTree[int](newNimOps(5), false)
		tree.SetLimits(DefaultLimits().SetCycles(200))
		tree.Search()
		tree.MakeMove(tree.RootMove())

		tree.SetLimits(DefaultLimits().SetCycles(200))
		tree.Search()
		assert.Equal(t, 200, tree.Cycles())
		assert.NotZero(t, tree.RootMove())
	})
}

func TestTree_Listener(t *testing.T) {
	fixedSeed(t)

	tree := NewTree[int](newNimOps(5), false)
	tree.SetLimits(DefaultLimits().SetCycles(100))

	cycleCalls := 0
	var stopStats ListenerTreeStats[int]
	tree.StatsListener().
		OnCycle(func(ListenerTreeStats[int]) { cycleCalls++ }).
		SetCycleInterval(10).
		OnStop(func(stats ListenerTreeStats[int]) { stopStats = stats })

	tree.Search()

	assert.Equal(t, 10, cycleCalls)
	assert.Equal(t, 100, stopStats.Cycles)
	assert.Equal(t, tree.RootMove(), stopStats.BestMove)
	assert.NotEmpty(t, stopStats.Pv)
	assert.Equal(t, StopCycles, stopStats.StopReason&StopCycles)
}

func TestUCB1(t *testing.T) {
	parent := newRootNode[int](false)
	parent.Children = []Node[int]{
		NewNode(parent, 1, false),
		NewNode(parent, 2, false),
		NewNode(parent, 3, false),
	}

	t.Run("unvisited children first, in order", func(t *testing.T) {
		assert.Same(t, &parent.Children[0], UCB1(parent))

		parent.record(0.5)
		parent.Children[0].record(0.5)
		assert.Same(t, &parent.Children[1], UCB1(parent))
	})

	t.Run("prefers the higher mean reward once all are visited", func(t *testing.T) {
		parent.record(0.5)
		parent.record(0.5)
		parent.Children[1].record(0.0)
		parent.Children[2].record(1.0)

		assert.Same(t, &parent.Children[2], UCB1(parent))
	})

	t.Run("exploration term lifts the less visited child", func(t *testing.T) {
		starved := newRootNode[int](false)
		starved.Children = []Node[int]{
			NewNode(starved, 1, false),
			NewNode(starved, 2, false),
		}
		for i := 0; i < 100; i++ {
			starved.record(0.6)
			starved.Children[0].record(0.6)
		}
		starved.record(0.5)
		starved.Children[1].record(0.5)

		// Child 0 barely exploits better, but child 1's exploration bonus
		// dominates at 100:1 visits
		assert.Same(t, &starved.Children[1], UCB1(starved))
	})
}

func TestTree_Pv(t *testing.T) {
	fixedSeed(t)

	tree := NewTree[int](newNimOps(5), false)
	tree.SetLimits(DefaultLimits().SetCycles(2000))
	tree.Search()

	pv := tree.Pv()
	require.NotEmpty(t, pv)
	assert.Equal(t, tree.RootMove(), pv[0])
	assert.LessOrEqual(t, len(pv), 5)
}
