package lib

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tidwall/gjson"
)

const defaultBedrockModelId = "anthropic.claude-3-sonnet-20240229-v1:0"

type BedrockClient struct {
	inner   *bedrockruntime.Client
	modelId string
}

func AWSGetBedrockRuntimeClient() *bedrockruntime.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Error loading default config: %s\n", err.Error())
		return nil
	}
	client := bedrockruntime.NewFromConfig(cfg)
	return client
}

func NewBedrockClient() *BedrockClient {
	modelId := os.Getenv("BEDROCK_MODEL_ID")
	if modelId == "" {
		modelId = defaultBedrockModelId
	}
	return &BedrockClient{
		inner:   AWSGetBedrockRuntimeClient(),
		modelId: modelId,
	}
}

func (b *BedrockClient) Complete(ctx context.Context, prompt string) (string, error) {
	if b.inner == nil {
		return "", errors.New("bedrock client is not configured")
	}
	body, err := json.Marshal(map[string]any{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        1000,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", err
	}
	output, err := b.inner.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelId),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		log.Printf("[bedrock] InvokeModel error: %s\n", err.Error())
		return "", err
	}
	text := gjson.GetBytes(output.Body, "content.0.text")
	if !text.Exists() {
		return "", errors.New("no content in model reply")
	}
	return text.String(), nil
}
