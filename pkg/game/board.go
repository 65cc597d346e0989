package game

import "fmt"

// Board is one node of the recursive game tree. At depth 0 the x/o masks hold
// the actual leaf marks. At depth > 0 each bit of x/o is the "virtual mark" of
// the sub-board at that cell (set once the sub-board is won), drawn marks
// sub-boards that finished without a winner, and subs holds the 9 children.
//
// Boards are persistent: every update returns a new node and shares all
// untouched subtrees with the original, so callers may keep old references.
type Board struct {
	depth int
	x     uint16
	o     uint16
	drawn uint16
	subs  []*Board
}

// NewBoard creates an empty board with the given nesting depth.
// Depth 0 is a plain tic-tac-toe grid, depth 1 nests a grid in every cell, and so on.
func NewBoard(depth int) *Board {
	if depth < 0 || depth >= MaxLevels {
		panic(fmt.Sprintf("game: board depth %d out of range [0, %d]", depth, MaxLevels-1))
	}

	board := &Board{depth: depth}
	if depth > 0 {
		board.subs = make([]*Board, Cells)
		for i := range board.subs {
			board.subs[i] = NewBoard(depth - 1)
		}
	}
	return board
}

func (b *Board) Depth() int {
	return b.depth
}

// MarkAt returns the mark of a cell: the leaf mark at depth 0,
// the virtual mark of the sub-board above.
func (b *Board) MarkAt(index int) Mark {
	mask := uint16(1) << index
	switch {
	case b.x&mask != 0:
		return PlayerX
	case b.o&mask != 0:
		return PlayerO
	default:
		return Empty
	}
}

// ChildAt returns the sub-board at the given cell, or nil for a leaf board.
func (b *Board) ChildAt(index int) *Board {
	if b.depth == 0 {
		return nil
	}
	return b.subs[index]
}

// clone copies the node itself, sharing the subs slice contents.
func (b *Board) clone() *Board {
	copied := *b
	if b.depth > 0 {
		copied.subs = make([]*Board, Cells)
		copy(copied.subs, b.subs)
	}
	return &copied
}

// WithChildReplaced returns a new board whose cell holds the given sub-board,
// with the cell's virtual mark recomputed from the child's status. The receiver
// is left untouched. Fails with ErrInvalidPath on a leaf board or a bad index.
func (b *Board) WithChildReplaced(index int, child *Board) (*Board, error) {
	if b.depth == 0 {
		return nil, fmt.Errorf("%w: leaf board has no sub-boards", ErrInvalidPath)
	}
	if index < 0 || index >= Cells {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidPath, index)
	}
	if child == nil || child.depth != b.depth-1 {
		return nil, fmt.Errorf("%w: sub-board depth mismatch", ErrInvalidPath)
	}

	copied := b.clone()
	copied.subs[index] = child

	mask := uint16(1) << index
	copied.x &^= mask
	copied.o &^= mask
	copied.drawn &^= mask
	switch child.Resolve() {
	case WonX:
		copied.x |= mask
	case WonO:
		copied.o |= mask
	case Drawn:
		copied.drawn |= mask
	}
	return copied, nil
}

// ApplyMark descends the path, places the mark on the targeted leaf cell and
// returns the updated tree. Sub-board wins and draws are stamped into the
// parent masks on the way back up. Fails with ErrInvalidPath if the path
// length does not match the depth, and with ErrIllegalMove if any node along
// the path is already decided or the leaf cell is occupied.
func (b *Board) ApplyMark(path MovePath, mark Mark) (*Board, error) {
	if path.Len() != b.depth+1 {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidPath, path.Len(), b.depth+1)
	}
	if mark == Empty {
		return nil, fmt.Errorf("%w: cannot place an empty mark", ErrIllegalMove)
	}
	return b.applyMark(path, 0, mark)
}

func (b *Board) applyMark(path MovePath, level int, mark Mark) (*Board, error) {
	if b.Resolve().Decided() {
		return nil, fmt.Errorf("%w: board at %s is already %s", ErrIllegalMove, prefixString(path, level), b.Resolve())
	}

	index := path.At(level)
	mask := uint16(1) << index

	if b.depth == 0 {
		if (b.x|b.o)&mask != 0 {
			return nil, fmt.Errorf("%w: cell %s is occupied", ErrIllegalMove, path)
		}

		copied := b.clone()
		if mark == PlayerX {
			copied.x |= mask
		} else {
			copied.o |= mask
		}
		return copied, nil
	}

	if (b.x|b.o|b.drawn)&mask != 0 {
		return nil, fmt.Errorf("%w: sub-board %s is already decided", ErrIllegalMove, prefixString(path, level+1))
	}

	sub, err := b.subs[index].applyMark(path, level+1, mark)
	if err != nil {
		return nil, err
	}

	copied := b.clone()
	copied.subs[index] = sub
	switch sub.Resolve() {
	case WonX:
		copied.x |= mask
	case WonO:
		copied.o |= mask
	case Drawn:
		copied.drawn |= mask
	}
	return copied, nil
}

func prefixString(path MovePath, levels int) string {
	if levels == 0 {
		return "root"
	}
	prefix := MovePath{length: uint8(levels), cells: path.cells}
	return prefix.String()
}
