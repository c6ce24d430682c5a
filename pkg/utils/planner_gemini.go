package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiPlannerClient is the alternate provider. JSON response mode keeps
// the output clean, but the validator still treats it as untrusted text.
type GeminiPlannerClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiPlannerClient(apiKey, model string, timeout time.Duration) (*GeminiPlannerClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *GeminiPlannerClient) Configured() bool { return true }

func (c *GeminiPlannerClient) GenerateDayPlan(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(plannerSystemInstruction)}}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrAIUpstream)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: non-text content part", ErrAIUpstream)
	}
	return string(text), nil
}

func (c *GeminiPlannerClient) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrAITimeout
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 429:
			retryAfter := retryAfterFromHeader(gerr.Header.Get("Retry-After"))
			if retryAfter == nil {
				retryAfter = retryAfterFromMessage(gerr.Message)
			}
			return &QuotaError{RetryAfter: retryAfter, Cause: err}
		case gerr.Code == 401 || gerr.Code == 403:
			return fmt.Errorf("%w: %s", ErrAIAuthFailed, gerr.Message)
		case gerr.Code >= 500:
			return fmt.Errorf("%w: %s", ErrAIUpstream, gerr.Message)
		}
	}

	return fmt.Errorf("%w: %v", ErrAIUpstream, err)
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}
