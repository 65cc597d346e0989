package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Cells is the number of cells in a single tic-tac-toe grid.
const Cells = 9

// MaxLevels caps the nesting depth a MovePath can address (depth 0..MaxLevels-1).
const MaxLevels = 8

// Mark of a single cell. Once set to a player value it never reverts to Empty.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// Other returns the opposing player's mark, Empty stays Empty.
func (m Mark) Other() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (m Mark) Rune() rune {
	switch m {
	case PlayerX:
		return 'X'
	case PlayerO:
		return 'O'
	default:
		return '-'
	}
}

func (m Mark) String() string {
	return string(m.Rune())
}

// Status of a board node, derived from its subtree.
type Status uint8

const (
	InProgress Status = iota
	Drawn
	WonX
	WonO
)

// WonBy maps a player mark to its win status, Empty to InProgress.
func WonBy(m Mark) Status {
	switch m {
	case PlayerX:
		return WonX
	case PlayerO:
		return WonO
	default:
		return InProgress
	}
}

// Decided reports whether the node accepts no further moves.
func (s Status) Decided() bool {
	return s != InProgress
}

// Winner returns the winning mark, or Empty for InProgress/Drawn.
func (s Status) Winner() Mark {
	switch s {
	case WonX:
		return PlayerX
	case WonO:
		return PlayerO
	default:
		return Empty
	}
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Drawn:
		return "drawn"
	case WonX:
		return "won by X"
	case WonO:
		return "won by O"
	default:
		return "unknown"
	}
}

// The 8 winning cell patterns: 3 rows, 3 columns, 2 diagonals.
var winningLines = [8]uint16{
	0b111_000_000, 0b000_111_000, 0b000_000_111,
	0b100_100_100, 0b010_010_010, 0b001_001_001,
	0b100_010_001, 0b001_010_100,
}

const fullMask uint16 = 0b111_111_111

func lineWin(mask uint16) bool {
	for _, line := range winningLines {
		if mask&line == line {
			return true
		}
	}
	return false
}

// MovePath addresses a single leaf cell: one index per depth level, root first.
// A path is valid only relative to a board of depth Len()-1. The zero value
// has length 0 and means "no move".
type MovePath struct {
	length uint8
	cells  [MaxLevels]uint8
}

// NewMovePath builds a path from root-to-leaf cell indices.
// Fails with ErrInvalidPath on an empty, too long, or out-of-range index list.
func NewMovePath(indices ...int) (MovePath, error) {
	if len(indices) == 0 || len(indices) > MaxLevels {
		return MovePath{}, fmt.Errorf("%w: length %d", ErrInvalidPath, len(indices))
	}

	var path MovePath
	path.length = uint8(len(indices))
	for level, index := range indices {
		if index < 0 || index >= Cells {
			return MovePath{}, fmt.Errorf("%w: index %d at level %d", ErrInvalidPath, index, level)
		}
		path.cells[level] = uint8(index)
	}
	return path, nil
}

// MustMovePath is NewMovePath that panics on a malformed path, for tests and literals.
func MustMovePath(indices ...int) MovePath {
	path, err := NewMovePath(indices...)
	if err != nil {
		panic(err)
	}
	return path
}

func (p MovePath) Len() int {
	return int(p.length)
}

// At returns the cell index at the given depth level (0 == root).
func (p MovePath) At(level int) int {
	return int(p.cells[level])
}

// child returns a copy of the path extended by one more index.
func (p MovePath) child(index int) MovePath {
	p.cells[p.length] = uint8(index)
	p.length++
	return p
}

// String renders the path as slash separated indices, e.g. "4/8".
func (p MovePath) String() string {
	if p.length == 0 {
		return "(none)"
	}

	builder := strings.Builder{}
	for level := 0; level < p.Len(); level++ {
		if level > 0 {
			builder.WriteByte('/')
		}
		builder.WriteByte('0' + p.cells[level])
	}
	return builder.String()
}

// ParseMovePath parses the format produced by MovePath.String.
func ParseMovePath(input string) (MovePath, error) {
	parts := strings.Split(strings.TrimSpace(input), "/")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return MovePath{}, fmt.Errorf("%w: %q is not an index", ErrInvalidPath, part)
		}
		indices = append(indices, index)
	}
	return NewMovePath(indices...)
}
