package lib

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	inner *openai.Client
	model string
}

func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("[openai] OPENAI_API_KEY is not set")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		inner: openai.NewClient(apiKey),
		model: model,
	}
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[openai] CreateChatCompletion error: %s\n", err.Error())
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in model reply")
	}
	return resp.Choices[0].Message.Content, nil
}
