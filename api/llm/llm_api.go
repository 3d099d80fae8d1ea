package llm

import "context"

// LLMAPI defines the interface for the generative text collaborator.
// Callers must treat the returned text as untrusted: it is raw model output
// and may be garbage, partial JSON, or prose around JSON.
type LLMAPI interface {
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
}
