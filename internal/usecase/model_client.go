package usecase

import "context"

// ModelClient is the optional external conversational model. Failures are
// always recoverable: the advisor substitutes locally built text.
type ModelClient interface {
	// Complete sends a system prompt plus user text and returns the
	// model's reply.
	Complete(ctx context.Context, system, user string) (string, error)
}
