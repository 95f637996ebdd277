package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// drawBoard is a full grid with no four-in-a-row
var drawBoard = []string{
	"RRYYRRY",
	"YYRRYYR",
	"RRYYRRY",
	"YYRRYYR",
	"RRYYRRY",
	"YYRRYYR",
}

func TestFindDropRowProgression(t *testing.T) {
	for col := 0; col < Columns; col++ {
		g := NewGame()
		for k := 0; k < Rows; k++ {
			assert.Equal(t, Rows-1-k, g.Board.FindDropRow(col), "column %d after %d moves", col, k)
			// alternate colours so the column never completes a line
			player := Red
			if (k/2)%2 == 1 {
				player = Yellow
			}
			_, _, err := g.ApplyMove(col, player)
			require.NoError(t, err)
		}
		assert.Equal(t, NotAvailable, g.Board.FindDropRow(col))
	}
}

func TestFindDropRowOutOfRange(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, NotAvailable, b.FindDropRow(-1))
	assert.Equal(t, NotAvailable, b.FindDropRow(Columns))
}

func TestCheckWinEmptyBoard(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.CheckWin())
}

func TestCheckWinDirections(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		want  bool
		owner Cell
	}{
		{
			name: "horizontal bottom row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"YYYY...",
			},
			want:  true,
			owner: Yellow,
		},
		{
			name: "horizontal right edge",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"...RRRR",
			},
			want:  true,
			owner: Red,
		},
		{
			name: "vertical",
			rows: []string{
				".......",
				".......",
				"......R",
				"......R",
				"......R",
				"......R",
			},
			want:  true,
			owner: Red,
		},
		{
			name: "diagonal rising left to right",
			rows: []string{
				".......",
				".......",
				"...R...",
				"..RY...",
				".RYY...",
				"RYYY...",
			},
			want:  true,
			owner: Red,
		},
		{
			name: "diagonal falling left to right",
			rows: []string{
				".......",
				".......",
				"Y......",
				"RY.....",
				"RRY....",
				"RRRY...",
			},
			want:  true,
			owner: Yellow,
		},
		{
			name: "three in every line",
			rows: []string{
				".......",
				".......",
				".......",
				"R......",
				"R...Y..",
				"RYYYR..",
			},
			want: false,
		},
		{
			name: "broken horizontal",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"RRYRR..",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.rows...)
			assert.Equal(t, tt.want, b.CheckWin())

			owner, ok := b.Winner()
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.owner, owner)
			}
		})
	}
}

func TestCheckDirection(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"YYYY...",
	)

	assert.True(t, b.CheckDirection(0, 5, 1, 0))
	assert.False(t, b.CheckDirection(1, 5, 1, 0), "only three cells remain from column 1")
	assert.False(t, b.CheckDirection(0, 5, 0, -1))
	assert.False(t, b.CheckDirection(4, 5, 1, 0), "empty origin")
	assert.False(t, b.CheckDirection(5, 5, 1, 0), "runs off the board")
	assert.False(t, b.CheckDirection(-1, 5, 1, 0))
}

func TestIsFull(t *testing.T) {
	b := mustParse(t, drawBoard...)
	assert.True(t, b.IsFull())
	assert.False(t, b.CheckWin())
	assert.Equal(t, Rows*Columns, b.Count(Red)+b.Count(Yellow))

	for col := 0; col < Columns; col++ {
		missing := b
		missing[col][0] = Empty
		assert.False(t, missing.IsFull(), "column %d has a free cell", col)
	}

	empty := NewBoard()
	assert.False(t, empty.IsFull())
}

func TestWithMoveLeavesOriginalUntouched(t *testing.T) {
	b := NewBoard()
	next, row, ok := b.WithMove(2, Red)

	require.True(t, ok)
	assert.Equal(t, Rows-1, row)
	assert.Equal(t, Red, next.Cell(2, Rows-1))
	assert.Equal(t, Empty, b.Cell(2, Rows-1))
	assert.Equal(t, 0, b.Count(Red))

	full := mustParse(t, drawBoard...)
	_, row, ok = full.WithMove(0, Red)
	assert.False(t, ok)
	assert.Equal(t, NotAvailable, row)
}

func TestValidColumns(t *testing.T) {
	b := mustParse(t,
		"R.....Y",
		"Y.....R",
		"R.....Y",
		"Y.....R",
		"R.....Y",
		"Y.....R",
	)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, b.ValidColumns())
}

func TestGridIsRowMajor(t *testing.T) {
	b := NewBoard()
	b, _, _ = b.WithMove(6, Yellow)

	grid := b.Grid()
	require.Len(t, grid, Rows)
	require.Len(t, grid[0], Columns)
	assert.Equal(t, int(Yellow), grid[Rows-1][6])
	assert.Equal(t, int(Empty), grid[0][6])
}

func TestParseBoardRejectsFloatingPiece(t *testing.T) {
	_, err := ParseBoard(
		".......",
		".......",
		".......",
		".......",
		"R......",
		".......",
	)
	assert.Error(t, err)

	_, err = ParseBoard(".......")
	assert.Error(t, err)
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := mustParse(t, drawBoard...)
	assert.Equal(t, "RRYYRRY\nYYRRYYR\nRRYYRRY\nYYRRYYR\nRRYYRRY\nYYRRYYR", b.String())
}
