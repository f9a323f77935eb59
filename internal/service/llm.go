package service

import "context"

// LLM is the completion client the pipeline depends on: one prompt in, one
// free-text completion out. Implementations block until the provider
// answers or ctx is done.
type LLM interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}
