package game

import (
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/bot"
)

const (
	MessageHumanWins    = "you win"
	MessageComputerWins = "computer wins"
	MessageDraw         = "draw"
)

// Notifier pushes session updates to whatever is rendering the game
type Notifier interface {
	SendMessage(sessionID string, message domain.ServerMessage) error
}

type nopNotifier struct{}

func (nopNotifier) SendMessage(string, domain.ServerMessage) error { return nil }

// Session is one human vs. computer game
type Session struct {
	ID           string
	Human        domain.Cell
	Computer     domain.Cell
	Game         *domain.Game
	CreatedAt    time.Time
	LastActivity time.Time
	FinishedAt   time.Time

	mu         sync.Mutex
	picker     bot.Picker
	notifier   Notifier
	botDelay   time.Duration
	botTimer   *time.Timer
	generation uint64
}

// Snapshot is a read-only view of a session for rendering
type Snapshot struct {
	SessionID   string       `json:"sessionId"`
	Board       [][]int      `json:"board"`
	CurrentTurn int          `json:"currentTurn"`
	Phase       domain.Phase `json:"phase"`
	Winner      int          `json:"winner"`
	MoveCount   int          `json:"moveCount"`
	YourTurn    bool         `json:"yourTurn"`
	Message     string       `json:"message,omitempty"`
}

func NewSession(id string, picker bot.Picker, notifier Notifier, botDelay time.Duration) *Session {
	if notifier == nil {
		notifier = nopNotifier{}
	}

	now := time.Now()
	return &Session{
		ID:           id,
		Human:        domain.Red,
		Computer:     domain.Yellow,
		Game:         domain.NewGame(),
		CreatedAt:    now,
		LastActivity: now,
		picker:       picker,
		notifier:     notifier,
		botDelay:     botDelay,
	}
}

// OnColumnClicked applies the human's move and, when the game goes on,
// schedules the computer's reply. State is untouched on error.
func (s *Session) OnColumnClicked(column int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Game.IsFinished() && s.Game.CurrentPlayer != s.Human {
		return domain.ErrNotYourTurn
	}

	row, _, err := s.Game.ApplyMove(column, s.Human)
	if err != nil {
		return err
	}
	s.LastActivity = time.Now()

	s.notifyMoveLocked(column, row, s.Human)
	if s.Game.IsFinished() {
		s.finishLocked()
		return nil
	}

	s.scheduleComputerMoveLocked()
	return nil
}

// PlayComputerMove lets the computer move right away if it is its turn
func (s *Session) PlayComputerMove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.playComputerMoveLocked()
}

func (s *Session) scheduleComputerMoveLocked() {
	if s.botDelay <= 0 {
		if err := s.playComputerMoveLocked(); err != nil {
			log.Printf("[BOT] Error handling computer move in session %s: %v", s.ID, err)
		}
		return
	}

	generation := s.generation
	s.botTimer = time.AfterFunc(s.botDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// A reset since scheduling means this reply belongs to an old game
		if generation != s.generation {
			return
		}
		s.botTimer = nil
		if err := s.playComputerMoveLocked(); err != nil {
			log.Printf("[BOT] Error handling computer move in session %s: %v", s.ID, err)
		}
	})
}

func (s *Session) playComputerMoveLocked() error {
	if s.Game.IsFinished() || s.Game.CurrentPlayer != s.Computer {
		return nil
	}

	column := s.picker.SelectMove(s.Game.Board, s.Computer, s.Human)
	row, _, err := s.Game.ApplyMove(column, s.Computer)
	if err != nil {
		return err
	}

	s.notifyMoveLocked(column, row, s.Computer)
	if s.Game.IsFinished() {
		s.finishLocked()
	}
	return nil
}

// Reset starts a new game in the same session and drops any pending computer move
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.generation++
	s.Game.Reset()
	s.FinishedAt = time.Time{}
	s.LastActivity = time.Now()

	log.Printf("[SESSION] Session %s reset", s.ID)

	snap := s.snapshotLocked()
	s.send(domain.ServerMessage{
		Type:        domain.MsgState,
		SessionID:   s.ID,
		Board:       snap.Board,
		CurrentTurn: snap.CurrentTurn,
		Phase:       snap.Phase,
	})
}

// Close stops any pending computer move
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.generation++
}

func (s *Session) stopTimerLocked() {
	if s.botTimer != nil {
		s.botTimer.Stop()
		s.botTimer = nil
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	g := s.Game
	snap := Snapshot{
		SessionID:   s.ID,
		Board:       g.Board.Grid(),
		CurrentTurn: int(g.CurrentPlayer),
		Phase:       g.Phase,
		Winner:      int(g.Winner),
		MoveCount:   g.MoveCount,
		YourTurn:    !g.IsFinished() && g.CurrentPlayer == s.Human,
	}

	switch {
	case g.Phase == domain.PhaseWon && g.Winner == s.Human:
		snap.Message = MessageHumanWins
	case g.Phase == domain.PhaseWon:
		snap.Message = MessageComputerWins
	case g.Phase == domain.PhaseDrawn:
		snap.Message = MessageDraw
	}

	return snap
}

// IsFinished reports whether the current game reached a terminal state
func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.Game.IsFinished()
}

func (s *Session) timestamps() (lastActivity, finishedAt time.Time, finished bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.LastActivity, s.FinishedAt, s.Game.IsFinished()
}

func (s *Session) finishLocked() {
	s.FinishedAt = time.Now()
	snap := s.snapshotLocked()

	log.Printf("[GAME] Session %s finished after %d moves: %s", s.ID, snap.MoveCount, snap.Message)

	s.send(domain.ServerMessage{
		Type:      domain.MsgGameOver,
		SessionID: s.ID,
		Message:   snap.Message,
		Board:     snap.Board,
		Phase:     snap.Phase,
		Winner:    snap.Winner,
	})
}

func (s *Session) notifyMoveLocked(column, row int, player domain.Cell) {
	s.send(domain.ServerMessage{
		Type:        domain.MsgMoveMade,
		SessionID:   s.ID,
		Column:      &column,
		Row:         &row,
		Player:      int(player),
		Board:       s.Game.Board.Grid(),
		CurrentTurn: int(s.Game.CurrentPlayer),
		Phase:       s.Game.Phase,
	})
}

func (s *Session) send(msg domain.ServerMessage) {
	if err := s.notifier.SendMessage(s.ID, msg); err != nil {
		log.Printf("[SESSION] Failed to notify session %s: %v", s.ID, err)
	}
}
