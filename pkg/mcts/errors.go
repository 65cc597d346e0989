package mcts

import "errors"

// ErrPonderClosed - the pondering worker has already shut down; the caller
// gets this instead of a stale move.
var ErrPonderClosed = errors.New("pondering worker is closed")
