package utils

import (
	"errors"
	"fmt"
)

var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrPortNotFound    = errors.New("port not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrAINotConfigured    = errors.New("ai service not configured")
	ErrAIAuthFailed       = errors.New("ai service authentication failed")
	ErrAITimeout          = errors.New("ai service timeout")
	ErrAIUpstream         = errors.New("ai service upstream error")
	ErrAIInvalidResponse  = errors.New("ai service returned an unusable plan")
	ErrWeatherUnavailable = errors.New("weather service unavailable")
)

// Error kinds surfaced to clients. Machine-readable, never bare strings.
const (
	KindAINotConfigured   = "ai_service_not_configured"
	KindAIQuotaExceeded   = "ai_service_quota_exceeded"
	KindAIAuthFailed      = "ai_service_auth_failed"
	KindAITimeout         = "ai_service_timeout"
	KindAIInvalidResponse = "ai_service_invalid_response"
	KindAIUnavailable     = "ai_service_unavailable"
	KindNotFound          = "not_found"
	KindValidationError   = "validation_error"
	KindWeatherUnavail    = "weather_unavailable"
	KindDatabaseError     = "database_error"
)

// QuotaError is returned when the LLM provider rejects a call for rate or
// usage limits. RetryAfter is the provider's hint in seconds, nil when the
// provider gave none.
type QuotaError struct {
	RetryAfter *int
	Cause      error
}

func (e *QuotaError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("ai service quota exceeded (retry after %ds)", *e.RetryAfter)
	}
	return "ai service quota exceeded"
}

func (e *QuotaError) Unwrap() error { return e.Cause }

// ErrorBody is the structured error object every externally visible failure
// is rendered as.
type ErrorBody struct {
	Error           string `json:"error"`
	Message         string `json:"message"`
	Troubleshooting string `json:"troubleshooting,omitempty"`
	RetryAfter      *int   `json:"retry_after"`
}

// ClassifyAIError maps an error from the planner pipeline onto the client
// taxonomy. The caller persists the result inside a failed DayPlan.
func ClassifyAIError(err error) ErrorBody {
	var quota *QuotaError
	switch {
	case errors.As(err, &quota):
		return ErrorBody{
			Error:           KindAIQuotaExceeded,
			Message:         "The AI service has reached its usage quota. This is temporary - please try again in a few minutes.",
			Troubleshooting: "Administrators: check the provider console for API quota limits.",
			RetryAfter:      quota.RetryAfter,
		}
	case errors.Is(err, ErrAINotConfigured):
		return ErrorBody{
			Error:           KindAINotConfigured,
			Message:         "AI service is not configured. Please contact your administrator.",
			Troubleshooting: "Administrators: set GROQ_API_KEY (or GEMINI_API_KEY with AI_PROVIDER=gemini).",
		}
	case errors.Is(err, ErrAIAuthFailed):
		return ErrorBody{
			Error:           KindAIAuthFailed,
			Message:         "AI service authentication failed. The API key may be invalid or expired.",
			Troubleshooting: "Administrators: verify the configured API key is valid and active.",
		}
	case errors.Is(err, ErrAITimeout):
		return ErrorBody{
			Error:           KindAITimeout,
			Message:         "The AI service took too long to respond. It is safe to retry once.",
			Troubleshooting: "Generation normally takes 15-30 seconds; check provider status if timeouts persist.",
		}
	case errors.Is(err, ErrAIInvalidResponse):
		return ErrorBody{
			Error:           KindAIInvalidResponse,
			Message:         "The AI service returned a plan we could not use. Retrying may or may not help.",
			Troubleshooting: "The response failed structural validation; the same inputs may reproduce it.",
		}
	case errors.Is(err, ErrAIUpstream):
		return ErrorBody{
			Error:           KindAIUnavailable,
			Message:         "The AI service is temporarily unavailable. Please try again in a few moments.",
			Troubleshooting: err.Error(),
		}
	default:
		return ErrorBody{
			Error:           KindAIUnavailable,
			Message:         "The AI service is temporarily unavailable. Please try again in a few moments.",
			Troubleshooting: err.Error(),
		}
	}
}
