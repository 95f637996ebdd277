package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/service/bot"
	"github.com/iamasit07/connect-four/backend/internal/service/cleanup"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	transportHttp "github.com/iamasit07/connect-four/backend/internal/transport/http"
	"github.com/iamasit07/connect-four/backend/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Opponent policy and connection registry
	policy := bot.NewPolicy(nil)
	connManager := websocket.NewConnectionManager()

	// 2. Sessions push their updates through the connection manager
	sessionManager := game.NewSessionManager(policy, connManager, cfg.BotMoveDelay)

	// 3. Background workers
	ctx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval, cfg.FinishedSessionTTL, cfg.SessionIdleTimeout)
	go cleanupWorker.Start(ctx)

	// 4. Transport
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.JWTSecret, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(cfg, sessionManager, wsHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
