package ai_fx

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"shorex/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient)

// PlannerConfig holds configuration for the AI planner client
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ProvidePlannerClient creates a planner client based on environment
// variables. A missing API key yields a disabled client rather than a
// startup failure so the rest of the API keeps working.
func ProvidePlannerClient() (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	if config.APIKey == "" {
		log.Printf("No API key set for AI provider %s, plan generation is disabled", config.Provider)
	} else {
		log.Printf("Initializing %s planner client with model: %s", config.Provider, config.Model)
	}

	return utils.NewPlannerClient(config.Provider, config.APIKey, config.Model, config.Timeout)
}

// getPlannerConfig reads configuration from environment variables
func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "groq")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("GROQ_API_KEY")
		model = os.Getenv("GROQ_MODEL")
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("AI_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		Timeout:  timeout,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
