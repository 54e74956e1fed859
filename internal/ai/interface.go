package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// Generate sends a prompt to the named model and returns the markdown reply.
	// Each agent picks its own model so quota can be spread across model tiers.
	Generate(ctx context.Context, model string, prompt string) (string, error)
}
