package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyAIErrorQuota(t *testing.T) {
	retryAfter := 120
	err := fmt.Errorf("call failed: %w", &QuotaError{RetryAfter: &retryAfter})

	body := ClassifyAIError(err)
	require.Equal(t, KindAIQuotaExceeded, body.Error)
	require.NotNil(t, body.RetryAfter)
	require.Equal(t, 120, *body.RetryAfter)
	require.NotEmpty(t, body.Troubleshooting)
}

func TestClassifyAIErrorQuotaWithoutHint(t *testing.T) {
	body := ClassifyAIError(&QuotaError{})
	require.Equal(t, KindAIQuotaExceeded, body.Error)
	require.Nil(t, body.RetryAfter)
}

func TestClassifyAIErrorSentinels(t *testing.T) {
	cases := []struct {
		err  error
		kind string
	}{
		{ErrAINotConfigured, KindAINotConfigured},
		{ErrAIAuthFailed, KindAIAuthFailed},
		{ErrAITimeout, KindAITimeout},
		{ErrAIInvalidResponse, KindAIInvalidResponse},
		{ErrAIUpstream, KindAIUnavailable},
		{fmt.Errorf("wrapped: %w", ErrAITimeout), KindAITimeout},
		{fmt.Errorf("%w: status 503", ErrAIUpstream), KindAIUnavailable},
	}

	for _, tc := range cases {
		body := ClassifyAIError(tc.err)
		require.Equal(t, tc.kind, body.Error, "for error %v", tc.err)
		require.NotEmpty(t, body.Message)
	}
}

func TestClassifyAIErrorUnknownFallsBack(t *testing.T) {
	body := ClassifyAIError(errors.New("connection reset by peer"))
	require.Equal(t, KindAIUnavailable, body.Error)
	require.Contains(t, body.Message, "temporarily unavailable")
	require.Contains(t, body.Troubleshooting, "connection reset")
}

func TestQuotaErrorUnwrap(t *testing.T) {
	cause := errors.New("429 from provider")
	err := &QuotaError{Cause: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "quota exceeded")

	retryAfter := 7
	err = &QuotaError{RetryAfter: &retryAfter}
	require.Contains(t, err.Error(), "retry after 7s")
}

func TestRetryAfterFromMessage(t *testing.T) {
	secs := retryAfterFromMessage("Rate limit reached. Please try again in 7.066s.")
	require.NotNil(t, secs)
	require.Equal(t, 8, *secs)

	secs = retryAfterFromMessage("Please try again in 120s")
	require.NotNil(t, secs)
	require.Equal(t, 120, *secs)

	require.Nil(t, retryAfterFromMessage("no hint here"))
}

func TestRetryAfterFromHeader(t *testing.T) {
	secs := retryAfterFromHeader("30")
	require.NotNil(t, secs)
	require.Equal(t, 30, *secs)

	require.Nil(t, retryAfterFromHeader(""))
	require.Nil(t, retryAfterFromHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
}
