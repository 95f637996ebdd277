package domain

import "fmt"

type Game struct {
	Board         Board
	CurrentPlayer Cell
	Phase         Phase
	Winner        Cell
	MoveCount     int
}

func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset puts the game back to an empty board with Red to move
func (g *Game) Reset() {
	g.Board = NewBoard()
	g.CurrentPlayer = Red
	g.Phase = PhaseInProgress
	g.Winner = Empty
	g.MoveCount = 0
}

// ApplyMove drops player's piece into column and re-evaluates the phase.
// Turn order is not checked here; the caller decides who may move.
func (g *Game) ApplyMove(column int, player Cell) (int, Phase, error) {
	if g.Phase != PhaseInProgress {
		return NotAvailable, g.Phase, fmt.Errorf("%w: game is %s", ErrInvalidMove, g.Phase)
	}

	if !player.IsPlayer() {
		return NotAvailable, g.Phase, fmt.Errorf("%w: unknown player %d", ErrInvalidMove, player)
	}

	if column < 0 || column >= Columns {
		return NotAvailable, g.Phase, fmt.Errorf("%w: column %d out of range", ErrInvalidMove, column)
	}

	row := g.Board.FindDropRow(column)
	if row == NotAvailable {
		return NotAvailable, g.Phase, fmt.Errorf("%w: column %d is full", ErrInvalidMove, column)
	}

	g.Board[column][row] = player
	g.MoveCount++

	if g.Board.CheckWin() {
		g.Phase = PhaseWon
		g.Winner = player
		g.CurrentPlayer = player
		return row, g.Phase, nil
	}

	if g.Board.IsFull() {
		g.Phase = PhaseDrawn
		return row, g.Phase, nil
	}

	g.CurrentPlayer = Opponent(player)
	return row, g.Phase, nil
}

func (g *Game) IsFinished() bool {
	return g.Phase == PhaseWon || g.Phase == PhaseDrawn
}
