package llm

import "context"

// Provider is one chat completion backend. Neon uses it for optional reply
// phrasing and recommendation explanations; the rule engine never needs it.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
