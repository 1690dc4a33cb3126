// Package engine implements Neon's rule-based conversational core: signal
// extraction, intent classification, audience and language inference, the
// four mode response builders, the first-turn greeting wrapper, and the
// response cache with per-user cooldown. The engine is deterministic and
// fully offline; every reply is derived from the message text alone.
package engine

import (
	"log"
	"strings"
	"unicode/utf8"
)

// Message is one prior turn of the conversation, oldest first.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single user turn handed to the engine.
type Request struct {
	UserID       string
	Message      string
	History      []Message
	AudienceHint Audience
}

// Response is the engine's reply plus the classification metadata that
// produced it. Source is "cooldown", "cache", or the mode name.
type Response struct {
	Reply    string        `json:"reply"`
	Mode     IntentMode    `json:"mode"`
	Audience Audience      `json:"audience"`
	Language LanguageStyle `json:"language"`
	Source   string        `json:"source"`
	Cached   bool          `json:"cached"`
}

// Engine ties the classifier pipeline to the shared memory service.
type Engine struct {
	memory *Memory
}

func New(memory *Memory) *Engine {
	return &Engine{memory: memory}
}

// fallbackReply is the safe reply for any internal builder failure. The user
// never sees an error for a chat message.
const fallbackReply = "I hit a styling snag there. Send your message again and I’ll pick it up."

// Reply runs the full pipeline for one turn: cooldown check, classification,
// cache lookup, builder dispatch, and first-turn greeting wrapping. It never
// fails; builder panics degrade to a generic fallback reply.
func (e *Engine) Reply(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: recovered builder panic: %v", r)
			resp = Response{
				Reply:    fallbackReply,
				Mode:     ModeFriendlyChat,
				Audience: AudienceGeneral,
				Language: LangEnglish,
				Source:   "fallback",
			}
		}
	}()

	message := truncateMessage(strings.TrimSpace(req.Message))

	firstTurn := len(TrimHistory(req.History)) == 0
	mode := DetectIntent(message)
	audience := DetectAudience(message, req.AudienceHint)
	language := DetectLanguage(message)

	if req.UserID != "" && e.memory.Throttled(req.UserID) {
		return Response{
			Reply:    CooldownReply,
			Mode:     mode,
			Audience: audience,
			Language: language,
			Source:   "cooldown",
		}
	}

	key := CacheKey(firstTurn, mode, message)
	if cached, ok := e.memory.Lookup(key); ok {
		return Response{
			Reply:    cached,
			Mode:     mode,
			Audience: audience,
			Language: language,
			Source:   "cache",
			Cached:   true,
		}
	}

	reply := buildModeResponse(mode, message, audience, language)
	if firstTurn {
		reply = WrapFirstResponse(reply)
	}
	e.memory.Store(key, reply)

	return Response{
		Reply:    reply,
		Mode:     mode,
		Audience: audience,
		Language: language,
		Source:   string(mode),
	}
}

// TrimHistory keeps only the most recent turns the engine considers and
// caps each message at MaxMessageChars. Older turns carry no classification
// weight and are dropped.
func TrimHistory(history []Message) []Message {
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}
	trimmed := make([]Message, len(history))
	for i, m := range history {
		m.Content = truncateMessage(m.Content)
		trimmed[i] = m
	}
	return trimmed
}

// truncateMessage caps a message at MaxMessageChars bytes without splitting
// a multi-byte rune, so truncated Hinglish or Devanagari text stays valid
// UTF-8 for the matchers.
func truncateMessage(s string) string {
	if len(s) <= MaxMessageChars {
		return s
	}
	cut := MaxMessageChars
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
