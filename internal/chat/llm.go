package chat

import (
	"context"
	"log"
	"strings"

	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/llm"
)

// enhanceReply lets a configured LLM rephrase a fresh rule-engine reply in
// the Neon persona. Cached, throttled, and fallback replies pass through
// untouched, as does the canonical first-turn greeting. Any provider error
// falls back to the rule reply, so chat keeps working offline.
func enhanceReply(ctx context.Context, provider llm.Provider, model, message string, resp engine.Response) string {
	if provider == nil || resp.Source != string(resp.Mode) {
		return resp.Reply
	}
	if strings.HasPrefix(resp.Reply, engine.Greeting) {
		return resp.Reply
	}

	req := llm.NewChatRequest(message, resp.Reply)
	req.Model = model
	completion, err := provider.Complete(ctx, req)
	if err != nil {
		log.Printf("chat: llm completion: %v", err)
		return resp.Reply
	}
	if content := strings.TrimSpace(completion.Content); content != "" {
		return content
	}
	return resp.Reply
}
