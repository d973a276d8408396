package dataforseo

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError represents a rate limit exceeded error.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("dataforseo: rate limit exceeded, retry at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a DataForSEO error, either an HTTP failure or a
// non-success status code inside a 200 envelope.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dataforseo: API error %d: %s (endpoint: %s)", e.StatusCode, e.Message, e.Endpoint)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication
// failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsPaymentRequired checks if the error indicates an exhausted
// DataForSEO account balance.
func IsPaymentRequired(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 402
	}
	return false
}
