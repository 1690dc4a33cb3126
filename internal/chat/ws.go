package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/llm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	UserID   string           `json:"user_id"`
	Message  string           `json:"message"`
	Audience string           `json:"audience,omitempty"`
	History  []engine.Message `json:"history,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type     string `json:"type"` // "response" or "error"
	Reply    string `json:"reply,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Audience string `json:"audience,omitempty"`
	Language string `json:"language,omitempty"`
	Source   string `json:"source,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleWebSocket runs the chat loop over a WebSocket connection. Each
// incoming message goes through the same engine pipeline as POST /api/chat
// and is persisted the same way.
func handleWebSocket(eng *engine.Engine, store *Store, provider llm.Provider, model string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, "invalid message format")
				continue
			}
			if req.Message == "" {
				sendWSError(conn, "message is required")
				continue
			}
			if req.UserID == "" {
				req.UserID = "anonymous"
			}

			resp := eng.Reply(engine.Request{
				UserID:       req.UserID,
				Message:      req.Message,
				History:      req.History,
				AudienceHint: engine.Audience(req.Audience),
			})
			resp.Reply = enhanceReply(r.Context(), provider, model, req.Message, resp)

			if resp.Source != "cooldown" {
				if _, err := store.SaveQuery(r.Context(), Query{
					UserID:   req.UserID,
					Message:  req.Message,
					Reply:    resp.Reply,
					Mode:     resp.Mode,
					Audience: resp.Audience,
					Language: resp.Language,
				}); err != nil {
					log.Printf("chat: saving query: %v", err)
				}
			}

			out := wsResponse{
				Type:     "response",
				Reply:    resp.Reply,
				Mode:     string(resp.Mode),
				Audience: string(resp.Audience),
				Language: string(resp.Language),
				Source:   resp.Source,
			}
			if err := conn.WriteJSON(out); err != nil {
				log.Printf("chat: websocket write: %v", err)
				return
			}
		}
	}
}

func sendWSError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(wsResponse{Type: "error", Error: message}); err != nil {
		log.Printf("chat: websocket write error: %v", err)
	}
}
