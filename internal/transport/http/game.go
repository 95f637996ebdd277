package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/internal/transport/http/middleware"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
	"github.com/iamasit07/connect-four/backend/pkg/httputil"
)

type GameHandler struct {
	SessionManager *game.SessionManager
	JWTSecret      string
	TokenTTL       time.Duration
	IsProduction   bool
}

func NewGameHandler(sm *game.SessionManager, jwtSecret string, tokenTTL time.Duration, isProduction bool) *GameHandler {
	return &GameHandler{
		SessionManager: sm,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
		IsProduction:   isProduction,
	}
}

type createGameResponse struct {
	SessionID string        `json:"sessionId"`
	Token     string        `json:"token"`
	State     game.Snapshot `json:"state"`
}

type moveRequest struct {
	Column *int `json:"column" binding:"required"`
}

// CreateGame starts a new session with the human to move
func (h *GameHandler) CreateGame(c *gin.Context) {
	session := h.SessionManager.CreateSession()

	token, err := auth.GenerateSessionToken(session.ID, h.JWTSecret, h.TokenTTL)
	if err != nil {
		log.Printf("[HTTP] Failed to issue token for session %s: %v", session.ID, err)
		h.SessionManager.RemoveSession(session.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	httputil.SetSessionCookie(c.Writer, token, h.TokenTTL, h.IsProduction)
	c.JSON(http.StatusCreated, createGameResponse{
		SessionID: session.ID,
		Token:     token,
		State:     session.Snapshot(),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// MakeMove is the human clicking a column
func (h *GameHandler) MakeMove(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	if err := session.OnColumnClicked(*req.Column); err != nil {
		c.JSON(moveErrorStatus(err), gin.H{"error": err.Error(), "state": session.Snapshot()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

func (h *GameHandler) ResetGame(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	session.Reset()
	c.JSON(http.StatusOK, session.Snapshot())
}

// DeleteGame abandons the session
func (h *GameHandler) DeleteGame(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	h.SessionManager.RemoveSession(session.ID)
	httputil.ClearSessionCookie(c.Writer)
	c.Status(http.StatusNoContent)
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
