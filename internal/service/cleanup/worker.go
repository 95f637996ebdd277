package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	FinishedTTL    time.Duration
	IdleTTL        time.Duration
}

func NewWorker(sm *game.SessionManager, interval, finishedTTL, idleTTL time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Worker{
		SessionManager: sm,
		Interval:       interval,
		FinishedTTL:    finishedTTL,
		IdleTTL:        idleTTL,
	}
}

// Start runs the cleanup immediately and then on every tick until ctx is done
func (w *Worker) Start(ctx context.Context) {
	log.Println("[CLEANUP] Background worker started")

	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	removed := w.SessionManager.CleanupStaleSessions(time.Now(), w.FinishedTTL, w.IdleTTL)
	if removed > 0 {
		log.Printf("[CLEANUP] %d sessions left in memory", w.SessionManager.ActiveCount())
	}
	return removed
}
