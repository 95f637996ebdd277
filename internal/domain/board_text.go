package domain

import (
	"fmt"
	"strings"
)

var cellRunes = map[Cell]byte{
	Empty:  '.',
	Red:    'R',
	Yellow: 'Y',
}

// String renders the board top row first, one line per row
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sb.WriteByte(cellRunes[b[col][row]])
		}
		if row < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads a diagram in the String format ('.', 'R', 'Y'), top row first.
// Pieces must respect gravity: no empty cell below an occupied one.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Rows {
		return b, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}

	for row, line := range rows {
		if len(line) != Columns {
			return b, fmt.Errorf("row %d: expected %d columns, got %d", row, Columns, len(line))
		}
		for col := 0; col < Columns; col++ {
			switch line[col] {
			case '.':
				b[col][row] = Empty
			case 'R':
				b[col][row] = Red
			case 'Y':
				b[col][row] = Yellow
			default:
				return b, fmt.Errorf("row %d col %d: unknown cell %q", row, col, line[col])
			}
		}
	}

	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows-1; row++ {
			if b[col][row] != Empty && b[col][row+1] == Empty {
				return b, fmt.Errorf("column %d: floating piece at row %d", col, row)
			}
		}
	}

	return b, nil
}
