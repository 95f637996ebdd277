package http

import (
	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect-four/backend/internal/config"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four/backend/internal/transport/websocket"
)

// NewRouter wires every route the game exposes
func NewRouter(cfg *config.Config, sm *game.SessionManager, wsHandler *websocket.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	gameHandler := NewGameHandler(sm, cfg.JWTSecret, cfg.SessionTokenTTL, cfg.IsProduction())

	router.GET("/health", Health)

	// Public: anyone can start a game
	router.POST("/api/games", gameHandler.CreateGame)

	// Protected: the session token must name the game
	games := router.Group("/api/games/:id")
	games.Use(middleware.SessionAuthMiddleware(sm, cfg.JWTSecret))
	{
		games.GET("", gameHandler.GetGame)
		games.POST("/moves", gameHandler.MakeMove)
		games.POST("/reset", gameHandler.ResetGame)
		games.DELETE("", gameHandler.DeleteGame)
	}

	// WebSocket route (auth handled inside the WS handler itself)
	if wsHandler != nil {
		router.GET("/ws", wsHandler.HandleWebSocket)
	}

	return router
}
