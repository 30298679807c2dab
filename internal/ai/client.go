package ai

import "context"

// Client is the generative text backend. GenerateJSON must return a body
// that is valid JSON and nothing else.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
