package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/domain"
)

// Picker chooses a column for the computer
type Picker interface {
	SelectMove(board domain.Board, self, opponent domain.Cell) int
}

// Policy is the win / block / random opponent.
// It only keeps a random source, guarded so one Policy can serve every session.
type Policy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPolicy(src rand.Source) *Policy {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Policy{rng: rand.New(src)}
}

// SelectMove returns the column to play, or domain.NotAvailable on a full board.
// Strategy:
// 1. Win immediately if possible
// 2. Block the opponent's immediate win
// 3. Otherwise pick a random open column
func (p *Policy) SelectMove(board domain.Board, self, opponent domain.Cell) int {
	validColumns := board.ValidColumns()
	if len(validColumns) == 0 {
		return domain.NotAvailable
	}

	// PRIORITY 1: take the win
	if col, ok := FindWinningColumn(board, self); ok {
		return col
	}

	// PRIORITY 2: occupy the opponent's winning spot
	if col, ok := FindWinningColumn(board, opponent); ok {
		return col
	}

	// PRIORITY 3: random open column
	p.mu.Lock()
	idx := p.rng.Intn(len(validColumns))
	p.mu.Unlock()

	return validColumns[idx]
}

// FindWinningColumn returns the lowest column where dropping player's piece
// completes four in a row. Every trial runs on a copy of board.
func FindWinningColumn(board domain.Board, player domain.Cell) (int, bool) {
	for _, col := range board.ValidColumns() {
		testBoard, _, ok := board.WithMove(col, player)
		if !ok {
			continue
		}
		if winner, won := testBoard.Winner(); won && winner == player {
			return col, true
		}
	}
	return domain.NotAvailable, false
}
