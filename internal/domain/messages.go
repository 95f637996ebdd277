package domain

// ClientMessage is what the websocket client sends us
type ClientMessage struct {
	Type   string `json:"type"`
	Token  string `json:"token,omitempty"`
	Column int    `json:"column"`
}

type ServerMessage struct {
	Type        string  `json:"type"`
	Message     string  `json:"message,omitempty"`
	SessionID   string  `json:"sessionId,omitempty"`
	Column      *int    `json:"column,omitempty"`
	Row         *int    `json:"row,omitempty"`
	Player      int     `json:"player,omitempty"`
	Board       [][]int `json:"board,omitempty"`
	CurrentTurn int     `json:"currentTurn,omitempty"`
	Phase       Phase   `json:"phase,omitempty"`
	Winner      int     `json:"winner,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	MsgState    = "state"
	MsgMoveMade = "move_made"
	MsgGameOver = "game_over"
	MsgError    = "error"
)
