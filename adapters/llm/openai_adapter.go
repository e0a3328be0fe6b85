package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/config"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type openAIAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIAdapter talks to any OpenAI-compatible completion endpoint; the
// base URL and model come from config so local runtimes work too.
func NewOpenAIAdapter(cfg config.Config, log logger.Logger) (service.TextGenerator, error) {
	if cfg.LLM.BaseURL == "" {
		return nil, fmt.Errorf("LLM base URL is not configured")
	}

	apiKey := cfg.LLM.APIKey
	if apiKey == "" {
		apiKey = "dummy-key"
	}
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = cfg.LLM.BaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Text generation adapter initialized")
	return &openAIAdapter{client: client, model: cfg.LLM.Model, log: log}, nil
}

func (a *openAIAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
