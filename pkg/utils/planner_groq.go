package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqPlannerClient talks to Groq through its OpenAI-compatible chat
// completion API. Llama 3.3 70B gives the best structured JSON quality on
// the free tier.
type GroqPlannerClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewGroqPlannerClient(apiKey, model string, timeout time.Duration) *GroqPlannerClient {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &GroqPlannerClient{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

func (c *GroqPlannerClient) Configured() bool { return true }

func (c *GroqPlannerClient) GenerateDayPlan(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: plannerSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", c.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrAIUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *GroqPlannerClient) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrAITimeout
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 429:
			return &QuotaError{RetryAfter: retryAfterFromMessage(apiErr.Message), Cause: err}
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return fmt.Errorf("%w: %s", ErrAIAuthFailed, apiErr.Message)
		case apiErr.HTTPStatusCode >= 500:
			return fmt.Errorf("%w: %s", ErrAIUpstream, apiErr.Message)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode >= 500 {
		return fmt.Errorf("%w: status %d", ErrAIUpstream, reqErr.HTTPStatusCode)
	}

	log.Printf("Groq API call failed: %v", err)
	return fmt.Errorf("%w: %v", ErrAIUpstream, err)
}
