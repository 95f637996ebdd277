package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/service/bot"
	"github.com/iamasit07/connect-four/backend/pkg/uid"
)

// SessionManager manages active game sessions
type SessionManager struct {
	sessions map[string]*Session // sessionID → Session
	mu       sync.RWMutex
	picker   bot.Picker
	notifier Notifier
	botDelay time.Duration
}

func NewSessionManager(picker bot.Picker, notifier Notifier, botDelay time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		picker:   picker,
		notifier: notifier,
		botDelay: botDelay,
	}
}

func (sm *SessionManager) CreateSession() *Session {
	session := NewSession(uid.GenerateSessionID(), sm.picker, sm.notifier, sm.botDelay)

	sm.mu.Lock()
	sm.sessions[session.ID] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s", session.ID)
	return session
}

func (sm *SessionManager) GetSession(sessionID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(sessionID string) error {
	sm.mu.Lock()
	session, exists := sm.sessions[sessionID]
	if !exists {
		sm.mu.Unlock()
		return fmt.Errorf("session not found")
	}
	delete(sm.sessions, sessionID)
	sm.mu.Unlock()

	session.Close()
	log.Printf("[SESSION] Removed session %s", sessionID)
	return nil
}

func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return len(sm.sessions)
}

// CleanupStaleSessions drops finished sessions older than finishedTTL and
// unfinished ones idle for longer than idleTTL. It returns how many were removed.
func (sm *SessionManager) CleanupStaleSessions(now time.Time, finishedTTL, idleTTL time.Duration) int {
	sm.mu.Lock()
	var stale []*Session
	for sessionID, session := range sm.sessions {
		lastActivity, finishedAt, finished := session.timestamps()
		expired := (finished && now.Sub(finishedAt) > finishedTTL) ||
			(!finished && now.Sub(lastActivity) > idleTTL)
		if expired {
			delete(sm.sessions, sessionID)
			stale = append(stale, session)
		}
	}
	sm.mu.Unlock()

	for _, session := range stale {
		session.Close()
	}

	if len(stale) > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", len(stale))
	}
	return len(stale)
}
