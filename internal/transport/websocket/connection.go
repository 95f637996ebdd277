package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connect-four/backend/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager keeps one websocket per game session
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use, so every socket gets its own lock
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers conn for sessionID, closing any previous socket
func (cm *ConnectionManager) AddConnection(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[sessionID]; exists && oldConn != conn {
		oldConn.Close()
	}

	cm.connections[sessionID] = conn
	cm.writeMu[sessionID] = &sync.Mutex{}
}

func (cm *ConnectionManager) RemoveConnection(sessionID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[sessionID]; exists {
		conn.Close()
		delete(cm.connections, sessionID)
		delete(cm.writeMu, sessionID)
	}
}

// RemoveConnectionIfMatching only removes conn if it is still the registered one,
// so cleaning up an old socket can't close a newer one.
func (cm *ConnectionManager) RemoveConnectionIfMatching(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[sessionID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, sessionID)
		delete(cm.writeMu, sessionID)
	}
}

func (cm *ConnectionManager) IsConnected(sessionID string) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	_, exists := cm.connections[sessionID]
	return exists
}

// SendMessage writes a JSON message to the session's socket.
// Sessions without a socket are skipped silently.
func (cm *ConnectionManager) SendMessage(sessionID string, message domain.ServerMessage) error {
	return cm.writeJSON(sessionID, message)
}

func (cm *ConnectionManager) SendError(sessionID string, text string) error {
	return cm.writeJSON(sessionID, domain.ErrorMessage{Type: domain.MsgError, Message: text})
}

func (cm *ConnectionManager) writeJSON(sessionID string, v interface{}) error {
	cm.mu.RLock()
	conn, exists := cm.connections[sessionID]
	mu, muExists := cm.writeMu[sessionID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// Ping sends a control ping under the socket's write lock
func (cm *ConnectionManager) Ping(sessionID string) error {
	cm.mu.RLock()
	conn, exists := cm.connections[sessionID]
	mu, muExists := cm.writeMu[sessionID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()

	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
