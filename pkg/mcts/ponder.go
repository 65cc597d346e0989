package mcts

import (
	"context"
)

// BestMove is the snapshot a pondering worker reports on demand: the current
// visit-count leader plus the search progress at the time of the report.
type BestMove[T MoveLike] struct {
	Move   T
	Visits int32 // visits of the chosen root child
	Cycles int   // total cycles completed so far, monotonically non-decreasing
}

type ponderCmdKind uint8

const (
	cmdRequestMove ponderCmdKind = iota
	cmdAdvance
	cmdClose
)

type ponderCmd[T MoveLike] struct {
	kind  ponderCmdKind
	move  T
	reply chan BestMove[T]
}

// Ponder runs the search loop of a Tree continuously on one background
// goroutine, so the engine keeps thinking while the opponent is deciding.
//
// The tree is owned exclusively by the worker; the foreground never touches
// it. All coordination goes through a single unbuffered command channel that
// the worker drains at cycle boundaries, never mid-rollout, so every cycle
// stays atomic and the hot loop takes no locks.
type Ponder[T MoveLike] struct {
	tree *Tree[T]
	cmds chan ponderCmd[T]
	done chan struct{}
}

// NewPonder takes ownership of the tree and starts the background search
// immediately; the call itself does not block. The worker runs until Close.
func NewPonder[T MoveLike](tree *Tree[T]) *Ponder[T] {
	tree.Limiter.SetLimits(DefaultLimits())

	ponder := &Ponder[T]{
		tree: tree,
		cmds: make(chan ponderCmd[T]),
		done: make(chan struct{}),
	}
	go ponder.loop()
	return ponder
}

func (p *Ponder[T]) loop() {
	defer close(p.done)
	p.tree.setupSearch()

	for {
		select {
		case cmd := <-p.cmds:
			if !p.handle(cmd) {
				return
			}
			continue
		default:
		}

		if p.tree.Root.Terminal() || len(p.tree.Root.Children) == 0 {
			// Nothing to search; park until the next command
			if !p.handle(<-p.cmds) {
				return
			}
			continue
		}

		p.tree.runCycle()
	}
}

func (p *Ponder[T]) handle(cmd ponderCmd[T]) bool {
	switch cmd.kind {
	case cmdRequestMove:
		cmd.reply <- p.snapshot()
	case cmdAdvance:
		p.tree.MakeMove(cmd.move)
	case cmdClose:
		return false
	}
	return true
}

func (p *Ponder[T]) snapshot() BestMove[T] {
	best := BestMove[T]{Cycles: p.tree.Cycles()}
	if child := p.tree.BestChild(p.tree.Root); child != nil {
		best.Move = child.Move
		best.Visits = child.N()
	}
	return best
}

// RequestMove asks the worker for the current best move and blocks only until
// the worker observes the request at the next cycle boundary, not until the
// context deadline. The deadline bounds the wait when the worker is busy or
// gone; deadlines under ~100ms are unreliable because of the signal/response
// latency and must not be relied upon.
func (p *Ponder[T]) RequestMove(ctx context.Context) (BestMove[T], error) {
	reply := make(chan BestMove[T], 1)

	select {
	case p.cmds <- ponderCmd[T]{kind: cmdRequestMove, reply: reply}:
	case <-p.done:
		return BestMove[T]{}, ErrPonderClosed
	case <-ctx.Done():
		return BestMove[T]{}, ctx.Err()
	}

	select {
	case best := <-reply:
		return best, nil
	case <-p.done:
		return BestMove[T]{}, ErrPonderClosed
	case <-ctx.Done():
		return BestMove[T]{}, ctx.Err()
	}
}

// Advance re-roots the search tree after a committed move, by either player.
// A move inside the explored tree keeps its subtree and statistics; a move
// outside it discards the tree and rebuilds from the new position. Search
// resumes right away; pondering never stops between turns.
func (p *Ponder[T]) Advance(move T) error {
	select {
	case p.cmds <- ponderCmd[T]{kind: cmdAdvance, move: move}:
		return nil
	case <-p.done:
		return ErrPonderClosed
	}
}

// Close stops the background loop and waits for the worker to exit.
// Safe to call more than once.
func (p *Ponder[T]) Close() {
	select {
	case p.cmds <- ponderCmd[T]{kind: cmdClose}:
	case <-p.done:
	}
	<-p.done
}
