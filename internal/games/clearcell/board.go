// Package clearcell implements the clear-cell puzzle: a grid of colored
// cells that the player clears by clicking, with automatic row collapse
// and a periodic row-insertion step that pushes the stack toward the
// bottom of the board. The game is over once a colored cell reaches the
// bottom row.
//
// The Board type is the pure engine; Game adapts it to the platform.
package clearcell

import (
	"errors"
	"fmt"
)

// Validation errors returned by ProcessClick. The row check always runs
// before the column check.
var (
	ErrInvalidRow    = errors.New("invalid row index")
	ErrInvalidColumn = errors.New("invalid column index")
)

// Offset set probed by ProcessClick: the clicked cell itself (index 0)
// plus its eight neighbors, paired positionally.
var (
	rowOffsets = [9]int{0, -1, -1, -1, 0, 0, 1, 1, 1}
	colOffsets = [9]int{0, -1, 0, 1, -1, 1, -1, 0, 1}
)

// Board owns the cell grid and the score counter. Dimensions are fixed
// for the lifetime of the board. All operations run to completion
// synchronously; callers driving the board from both a timer and user
// input must serialize access themselves.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
	score int
	src   Source
}

// NewBoard creates an all-empty board with the given dimensions.
// rows and cols must be positive; src supplies cells for inserted rows.
func NewBoard(rows, cols int, src Source) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
		src:   src,
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Score returns the number of cells cleared by clicks so far.
func (b *Board) Score() int {
	return b.score
}

// CellAt returns the cell at (row, col), or Empty when out of bounds.
func (b *Board) CellAt(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Empty
	}
	return b.cells[row][col]
}

// RowCells returns a copy of the given row. Out-of-range rows yield an
// all-empty row. The internal grid is never aliased to callers.
func (b *Board) RowCells(row int) []Cell {
	out := make([]Cell, b.cols)
	if row < 0 || row >= b.rows {
		return out
	}
	copy(out, b.cells[row])
	return out
}

// IsGameOver reports whether any cell in the bottom row is non-empty.
func (b *Board) IsGameOver() bool {
	for col := 0; col < b.cols; col++ {
		if !b.cells[b.rows-1][col].IsEmpty() {
			return true
		}
	}
	return false
}

// CanMove reports whether (row, col) is inside the board and holds a
// non-empty cell. Used to bound-check neighbor probes during clears.
func (b *Board) CanMove(row, col int) bool {
	if row < 0 || col < 0 || row >= b.rows || col >= b.cols {
		return false
	}
	return !b.cells[row][col].IsEmpty()
}

// ProcessClick handles a player click at (row, col).
//
// The row index is validated first, then the column; no mutation happens
// on a failed check. Clicking an empty cell is a no-op. Otherwise every
// probed position holding the clicked kind is cleared and scores one
// point each, the clicked cell included, since the zero offset is probed
// like any neighbor. Afterwards fully-empty rows above the last colored
// row collapse: everything below them shifts up one row.
func (b *Board) ProcessClick(row, col int) error {
	if row < 0 || row >= b.rows {
		return fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	if col < 0 || col >= b.cols {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}

	kind := b.cells[row][col]
	if kind.IsEmpty() {
		return nil
	}

	for i := range rowOffsets {
		r := row + rowOffsets[i]
		c := col + colOffsets[i]
		if b.CanMove(r, c) && b.cells[r][c] == kind {
			b.cells[r][c] = Empty
			b.score++
		}
	}

	b.collapse()
	return nil
}

// collapse removes fully-empty rows that sit above the last colored row,
// pulling every row below them up by one and clearing the vacated bottom
// of the colored region. The cursor re-examines the same index after a
// shift, so runs of empty rows collapse completely.
func (b *Board) collapse() {
	last := b.LastColoredRow()

	row := 0
	for row < last {
		if !b.rowEmpty(row) {
			row++
			continue
		}

		for r := row; r < last; r++ {
			copy(b.cells[r], b.cells[r+1])
		}
		for c := 0; c < b.cols; c++ {
			b.cells[last][c] = Empty
		}
		last--
	}
}

// rowEmpty reports whether every cell in the given row is empty.
func (b *Board) rowEmpty(row int) bool {
	for col := 0; col < b.cols; col++ {
		if !b.cells[row][col].IsEmpty() {
			return false
		}
	}
	return true
}

// LastColoredRow returns the index of the bottommost row containing a
// non-empty cell, scanning bottom-up. Returns 0 for an all-empty board.
func (b *Board) LastColoredRow() int {
	for row := b.rows - 1; row >= 0; row-- {
		if !b.rowEmpty(row) {
			return row
		}
	}
	return 0
}

// AdvanceOneStep performs one animation tick: a freshly generated row
// appears at the top and every existing row shifts down one position,
// discarding the old bottom row. Does nothing once the game is over.
// The score is unaffected.
func (b *Board) AdvanceOneStep() {
	if b.IsGameOver() {
		return
	}

	next := make([][]Cell, b.rows)
	next[0] = make([]Cell, b.cols)
	for col := 0; col < b.cols; col++ {
		next[0][col] = b.src.NextNonEmptyCell()
	}
	for row := 1; row < b.rows; row++ {
		next[row] = b.cells[row-1]
	}
	b.cells = next
}
