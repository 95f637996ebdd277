package domain

// Cell is the owner of a single board cell
type Cell int

const (
	Empty  Cell = 0
	Red    Cell = 1 // human
	Yellow Cell = 2 // computer
)

func (c Cell) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// IsPlayer reports whether c is one of the two playing colours
func (c Cell) IsPlayer() bool {
	return c == Red || c == Yellow
}

// Opponent returns the other playing colour
func Opponent(c Cell) Cell {
	if c == Red {
		return Yellow
	}
	return Red
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// NotAvailable is returned when a column has no free cell
	NotAvailable = -1
)

// to represent the game phase
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseDrawn      Phase = "drawn"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove Error = "invalid move"
	ErrNotYourTurn Error = "not your turn"
)
