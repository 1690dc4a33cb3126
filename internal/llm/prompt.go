package llm

import (
	"fmt"
	"strconv"
)

// explainSystemPrompt is the persona used for recommendation explanations.
const explainSystemPrompt = `You are Neon, an AI shopping assistant for fashion in India.
Explain in 2-3 short sentences why the given product fits the shopper's request.
Mention value for money and one styling angle. No emojis, no markdown, no links.`

// NewExplainRequest builds the completion request for a recommendation
// explanation.
func NewExplainRequest(query, productTitle string, price, rating float64) CompletionRequest {
	input := fmt.Sprintf("Shopper asked: %s\nRecommended product: %s\nPrice: INR %s\nRating: %s/5",
		query, productTitle,
		strconv.FormatFloat(price, 'f', -1, 64),
		strconv.FormatFloat(rating, 'f', -1, 64))

	return CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: explainSystemPrompt},
			{Role: RoleUser, Content: input},
		},
		MaxTokens:   200,
		Temperature: 0.4,
	}
}

// chatSystemPrompt is the persona for LLM-phrased chat replies. The rule
// engine's reply is passed in as a draft so the model rephrases it instead
// of inventing content.
const chatSystemPrompt = `You are Neon, an AI shopping assistant for fashion in India.
Rewrite the draft reply in a warm, concise voice. Keep every section heading,
numbered step, bullet point, link, and question, in the same order. Do not add
new products, links, or claims.`

// NewChatRequest builds the completion request that rephrases one chat
// reply in the Neon persona.
func NewChatRequest(message, draftReply string) CompletionRequest {
	input := fmt.Sprintf("Shopper said: %s\n\nDraft reply:\n%s", message, draftReply)

	return CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: chatSystemPrompt},
			{Role: RoleUser, Content: input},
		},
		MaxTokens:   600,
		Temperature: 0.5,
	}
}
