package chat

import (
	"time"

	"github.com/neon-ai/neon/internal/engine"
)

// Query is one persisted chat turn: the user message and the reply Neon
// gave it, with the classification that produced the reply.
type Query struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Message   string               `json:"message"`
	Reply     string               `json:"reply"`
	Mode      engine.IntentMode    `json:"mode"`
	Audience  engine.Audience      `json:"audience"`
	Language  engine.LanguageStyle `json:"language"`
	CreatedAt time.Time            `json:"created_at"`
}

// historyLimit caps how many past queries the history endpoint returns.
const historyLimit = 50
