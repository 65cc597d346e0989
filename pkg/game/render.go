package game

import "strings"

// String renders the board as an ASCII grid, nested boards separated by a
// one-cell gutter. A decided sub-board keeps its final position drawn and is
// overlaid with the winner's mark ('=' for a draw) on its corners and center.
func (b *Board) String() string {
	size := displaySize(b.depth)
	grid := make([][]byte, size)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", size))
	}

	b.fill(grid, 0, 0)

	rows := make([]string, size)
	for i := range grid {
		rows[i] = string(grid[i])
	}
	return strings.Join(rows, "\n")
}

func displaySize(depth int) int {
	size := 3
	for level := 0; level < depth; level++ {
		size = size*3 + 2
	}
	return size
}

func (b *Board) fill(grid [][]byte, top, left int) {
	if b.depth == 0 {
		for i := 0; i < Cells; i++ {
			grid[top+i/3][left+i%3] = byte(b.MarkAt(i).Rune())
		}
		return
	}

	sub := displaySize(b.depth - 1)
	for i := 0; i < Cells; i++ {
		subTop := top + (i/3)*(sub+1)
		subLeft := left + (i%3)*(sub+1)
		b.subs[i].fill(grid, subTop, subLeft)

		symbol := byte(b.MarkAt(i).Rune())
		if b.MarkAt(i) == Empty {
			if b.drawn&(1<<i) == 0 {
				continue
			}
			symbol = '='
		}
		grid[subTop][subLeft] = symbol
		grid[subTop][subLeft+sub-1] = symbol
		grid[subTop+sub-1][subLeft] = symbol
		grid[subTop+sub-1][subLeft+sub-1] = symbol
		grid[subTop+sub/2][subLeft+sub/2] = symbol
	}
}
