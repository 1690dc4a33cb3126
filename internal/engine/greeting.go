package engine

import "strings"

// Greeting is the canonical first-turn introduction. It appears at most once
// per conversation, always as the first text the user sees.
const Greeting = "✨ Hey! I’m Neon — your AI Shopping Assistant. Send me a fashion product link or tell me what you’re looking for, and I’ll help you pick the best option."

// greetingEquivalents are builder-produced opening lines that the wrapper
// absorbs on the first turn. Without this, a first-turn "hi" would greet the
// user twice: once canonically and once from the friendly builder.
var greetingEquivalents = []string{
	shortHeader,
	"Hi! I’m Neon. Want fashion picks, outfit ideas, or affiliate growth help?",
	"Hi! Main Neon hoon. Fashion picks, outfit styling, ya affiliate growth help chahiye?",
}

// WrapFirstResponse prepends the canonical greeting to a first-turn reply.
// Any greeting-equivalent opening line in the body is stripped first, so
// wrapping is idempotent and the reply never carries two introductions. A
// body that is nothing but a greeting collapses to the canonical greeting
// alone.
func WrapFirstResponse(body string) string {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, Greeting) {
		return trimmed
	}
	for _, eq := range greetingEquivalents {
		if rest, ok := strings.CutPrefix(trimmed, eq); ok {
			trimmed = strings.TrimSpace(rest)
			break
		}
	}
	if trimmed == "" {
		return Greeting
	}
	return Greeting + "\n\n" + trimmed
}
