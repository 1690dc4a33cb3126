package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/llm"
)

// RegisterRoutes mounts the chat API routes. provider may be nil, in which
// case replies come straight from the rule engine.
func RegisterRoutes(r chi.Router, eng *engine.Engine, store *Store, provider llm.Provider, model string) {
	r.Post("/api/chat", handleChat(eng, store, provider, model))
	r.Get("/api/history", handleHistory(store))
	r.Delete("/api/history", handleClearHistory(store))
	r.Get("/ws/chat", handleWebSocket(eng, store, provider, model))
}

type chatRequest struct {
	UserID   string           `json:"user_id"`
	Message  string           `json:"message"`
	Audience string           `json:"audience,omitempty"`
	History  []engine.Message `json:"history,omitempty"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Mode     string `json:"mode"`
	Audience string `json:"audience"`
	Language string `json:"language"`
	Source   string `json:"source"`
	Cached   bool   `json:"cached"`
}

func handleChat(eng *engine.Engine, store *Store, provider llm.Provider, model string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, `{"error":"message is required"}`, http.StatusBadRequest)
			return
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

		// Cooldown replies are throttle noise, not conversation turns.
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

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{
			Reply:    resp.Reply,
			Mode:     string(resp.Mode),
			Audience: string(resp.Audience),
			Language: string(resp.Language),
			Source:   resp.Source,
			Cached:   resp.Cached,
		})
	}
}

func handleHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			userID = "anonymous"
		}
		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		queries, err := store.History(r.Context(), userID, limit)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		if queries == nil {
			queries = []Query{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(queries)
	}
}

func handleClearHistory(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			userID = "anonymous"
		}

		deleted, err := store.ClearHistory(r.Context(), userID)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int64{"deleted": deleted})
	}
}
