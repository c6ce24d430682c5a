package utils

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PlannerClientInterface is the outbound LLM contract: one prompt in, raw
// text out. Implementations classify provider failures into the shared
// error set and enforce their own call timeout; retries are the caller's
// decision.
type PlannerClientInterface interface {
	GenerateDayPlan(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

const plannerSystemInstruction = "You are an expert cruise port day planner. " +
	"You always respond with valid JSON only, no markdown."

// NewPlannerClient builds the provider selected by config. An empty API key
// yields a disabled client rather than an error, so "not configured" is a
// constructor-time fact the health check and orchestrator can both see.
func NewPlannerClient(provider, apiKey, model string, timeout time.Duration) (PlannerClientInterface, error) {
	if apiKey == "" {
		return &disabledPlanner{}, nil
	}
	switch strings.ToLower(provider) {
	case "groq":
		return NewGroqPlannerClient(apiKey, model, timeout), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model, timeout)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s (use 'groq' or 'gemini')", provider)
	}
}

type disabledPlanner struct{}

func (d *disabledPlanner) GenerateDayPlan(ctx context.Context, prompt string) (string, error) {
	return "", ErrAINotConfigured
}

func (d *disabledPlanner) Configured() bool { return false }

// Groq embeds the wait hint in the error message rather than a header the
// SDK exposes, e.g. "Please try again in 7.066s".
var retryAfterMsgRe = regexp.MustCompile(`(?i)try again in ([0-9.]+)\s*s`)

func retryAfterFromMessage(msg string) *int {
	m := retryAfterMsgRe.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	secs := int(math.Ceil(f))
	return &secs
}

func retryAfterFromHeader(value string) *int {
	if value == "" {
		return nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return &secs
	}
	return nil
}
