package llm

import (
	"context"
)

// LLMClient generates free text for a prompt.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// systemPrompt frames every backend the same way.
const systemPrompt = "You summarise protein-protein interaction networks for biologists. Be concise and factual."

const maxTokens = 400
