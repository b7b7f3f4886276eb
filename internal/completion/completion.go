// Package completion abstracts the external language-model API behind a
// single-call interface so the generation pipeline can run against fakes.
package completion

import "context"

type Request struct {
	// System sets the assistant persona for the conversation.
	System string
	// Prompt is the user instruction to complete.
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float32
}

type Completer interface {
	// Complete sends a single completion request and returns the generated
	// text. Failures surface as *apperr.UpstreamError carrying the upstream
	// HTTP status where one was received.
	Complete(ctx context.Context, req Request) (string, error)
}
