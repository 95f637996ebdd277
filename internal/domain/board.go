package domain

// Board is stored column-major: board[col][row].
// Row 0 is the top of the grid and Rows-1 is the bottom.
type Board [Columns][Rows]Cell

func NewBoard() Board {
	return Board{}
}

func inBounds(col, row int) bool {
	return col >= 0 && col < Columns && row >= 0 && row < Rows
}

// Cell returns the owner at (col, row), Empty when out of bounds
func (b *Board) Cell(col, row int) Cell {
	if !inBounds(col, row) {
		return Empty
	}
	return b[col][row]
}

// FindDropRow returns the lowest free row in column, scanning from the bottom
func (b *Board) FindDropRow(column int) int {
	if column < 0 || column >= Columns {
		return NotAvailable
	}

	for row := Rows - 1; row >= 0; row-- {
		if b[column][row] == Empty {
			return row
		}
	}

	return NotAvailable
}

// WithMove simulates a drop on a copy of the board.
// The receiver is never modified.
func (b Board) WithMove(column int, player Cell) (Board, int, bool) {
	row := b.FindDropRow(column)
	if row == NotAvailable {
		return b, NotAvailable, false
	}
	b[column][row] = player
	return b, row, true
}

// CheckWin reports whether any four-in-a-row exists on the board
func (b *Board) CheckWin() bool {
	_, ok := b.Winner()
	return ok
}

// Winner returns the owner of the first four-in-a-row found
func (b *Board) Winner() (Cell, bool) {
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			owner := b[col][row]
			if owner == Empty {
				continue
			}

			if b.CheckDirection(col, row, 1, 0) || // horizontal
				b.CheckDirection(col, row, 0, 1) || // vertical
				b.CheckDirection(col, row, 1, 1) || // diagonal \
				b.CheckDirection(col, row, 1, -1) { // diagonal /
				return owner, true
			}
		}
	}

	return Empty, false
}

// CheckDirection walks ToWin cells from (col, row), origin included, and
// reports whether all of them belong to the origin's owner.
func (b *Board) CheckDirection(col, row, dCol, dRow int) bool {
	if !inBounds(col, row) {
		return false
	}

	owner := b[col][row]
	if owner == Empty {
		return false
	}

	for i := 0; i < ToWin; i++ {
		c, r := col+i*dCol, row+i*dRow
		if !inBounds(c, r) || b[c][r] != owner {
			return false
		}
	}

	return true
}

// IsFull is true once the top cell of every column is taken
func (b *Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[col][0] == Empty {
			return false
		}
	}

	return true
}

// ValidColumns lists the columns that still accept a piece, in ascending order
func (b *Board) ValidColumns() []int {
	valid := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b[col][0] == Empty {
			valid = append(valid, col)
		}
	}
	return valid
}

// Count returns how many cells hold c
func (b *Board) Count(c Cell) int {
	n := 0
	for col := range b {
		for row := range b[col] {
			if b[col][row] == c {
				n++
			}
		}
	}
	return n
}

// Grid converts the board to row-major ints for rendering and JSON
func (b *Board) Grid() [][]int {
	grid := make([][]int, Rows)
	for row := 0; row < Rows; row++ {
		grid[row] = make([]int, Columns)
		for col := 0; col < Columns; col++ {
			grid[row][col] = int(b[col][row])
		}
	}
	return grid
}
