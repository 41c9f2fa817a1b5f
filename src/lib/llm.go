package lib

import (
	"context"
	"log"
	"os"
)

// LLMClient is the single-shot completion surface the agent consumes.
// No streaming, no multi-turn memory.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var llmClient LLMClient

func GetLLMClient() LLMClient {
	if llmClient != nil {
		return llmClient
	}
	provider := os.Getenv("LLM_PROVIDER")
	switch provider {
	case "openai":
		llmClient = NewOpenAIClient()
	default:
		llmClient = NewBedrockClient()
	}
	log.Printf("[llm] provider initialized: %T\n", llmClient)
	return llmClient
}

// NewLLMClient Replace llm instance with custom client implementation
func NewLLMClient(c LLMClient) LLMClient {
	llmClient = c
	return llmClient
}
