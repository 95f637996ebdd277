package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iamasit07/connect-four/backend/internal/domain"
	"github.com/iamasit07/connect-four/backend/internal/service/game"
	"github.com/iamasit07/connect-four/backend/pkg/auth"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	JWTSecret      string
	Upgrader       websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, jwtSecret string, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		JWTSecret:      jwtSecret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the request and serves the socket until it closes
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// 1. Wait for initialization
	session, err := h.initSession(conn)
	if err != nil {
		log.Printf("[WS] Rejected connection: %v", err)
		conn.WriteJSON(domain.ErrorMessage{Type: domain.MsgError, Message: err.Error()})
		conn.Close()
		return
	}

	sessionID := session.ID
	h.ConnManager.AddConnection(sessionID, conn)
	log.Printf("[WS] Connection initialized for session %s", sessionID)

	done := make(chan struct{})
	go h.keepAlive(sessionID, done)

	defer func() {
		close(done)
		h.ConnManager.RemoveConnectionIfMatching(sessionID, conn)
		log.Printf("[WS] Connection closed for session %s", sessionID)
	}()

	h.sendState(session)

	// 2. Main message loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Session %s disconnected unexpectedly: %v", sessionID, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		// the session may have been cleaned up while the socket stayed open
		if _, exists := h.SessionManager.GetSession(sessionID); !exists {
			h.ConnManager.SendError(sessionID, "Session expired")
			return
		}

		h.processMessage(session, msg)
	}
}

func (h *Handler) initSession(conn *websocket.Conn) (*game.Session, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var msg domain.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.New("invalid init message")
	}

	if msg.Type != "init" || msg.Token == "" {
		return nil, errors.New("missing initialization or token")
	}

	claims, err := auth.ValidateSessionToken(msg.Token, h.JWTSecret)
	if err != nil {
		return nil, errors.New("invalid token or session expired")
	}

	session, exists := h.SessionManager.GetSession(claims.SessionID)
	if !exists {
		return nil, errors.New("session not found")
	}

	return session, nil
}

func (h *Handler) keepAlive(sessionID string, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.ConnManager.Ping(sessionID); err != nil {
				return
			}
		}
	}
}

// processMessage routes client actions to the session
func (h *Handler) processMessage(session *game.Session, msg domain.ClientMessage) {
	switch msg.Type {
	case "click_column":
		if err := session.OnColumnClicked(msg.Column); err != nil {
			// bad clicks are expected from the UI, tell the client and carry on
			h.ConnManager.SendError(session.ID, err.Error())
		}

	case "reset":
		session.Reset()

	case "get_state":
		h.sendState(session)

	default:
		h.ConnManager.SendError(session.ID, "Unknown message type")
	}
}

func (h *Handler) sendState(session *game.Session) {
	snap := session.Snapshot()
	h.ConnManager.SendMessage(session.ID, domain.ServerMessage{
		Type:        domain.MsgState,
		SessionID:   snap.SessionID,
		Message:     snap.Message,
		Board:       snap.Board,
		CurrentTurn: snap.CurrentTurn,
		Phase:       snap.Phase,
		Winner:      snap.Winner,
	})
}
