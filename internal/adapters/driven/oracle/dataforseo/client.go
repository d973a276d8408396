package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production DataForSEO API root.
	DefaultBaseURL = "https://api.dataforseo.com/v3"

	// DefaultTimeout is the default HTTP request timeout. Live
	// endpoints block until the result is computed, so this is long.
	DefaultTimeout = 60 * time.Second

	// statusOK is the DataForSEO envelope success code.
	statusOK = 20000
)

// Live endpoint paths under the API root.
const (
	endpointKeywordsForKeywords = "/dataforseo_labs/google/keywords_for_keywords/live"
	endpointRelatedKeywords     = "/dataforseo_labs/google/related_keywords/live"
	endpointKeywordsForSite     = "/dataforseo_labs/google/keywords_for_site/live"
	endpointSERPOrganic         = "/serp/google/organic/live/advanced"
)

// Client talks to the DataForSEO API with basic auth and proactive
// rate limiting.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	login       string
	password    string
	rateLimiter *RateLimiter
}

// NewClient creates a client for the production API.
func NewClient(login, password string) *Client {
	return NewClientWithBaseURL(login, password, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API root,
// used to point at test servers.
func NewClientWithBaseURL(login, password, baseURL string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		baseURL:     baseURL,
		login:       login,
		password:    password,
		rateLimiter: NewRateLimiter(),
	}
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// post sends a single-task payload to an endpoint and returns the
// decoded envelope. The API expects every request body to be a JSON
// array of task objects.
func (c *Client) post(ctx context.Context, endpoint string, payload any) (*envelope, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal([]any{payload})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.login, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    httpErrorMessage(raw, resp.Status),
			Endpoint:   endpoint,
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.StatusCode != statusOK {
		return nil, &APIError{
			StatusCode: env.StatusCode,
			Message:    env.StatusMessage,
			Endpoint:   endpoint,
		}
	}

	return &env, nil
}

// httpErrorMessage pulls the envelope status message out of an error
// body when there is one.
func httpErrorMessage(raw []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.StatusMessage != "" {
		return env.StatusMessage
	}
	return fallback
}

// firstTaskResult returns the raw result of the first task. A missing
// or empty task is not an error: the caller gets nil and keeps the
// envelope cost.
func firstTaskResult(env *envelope) json.RawMessage {
	if len(env.Tasks) == 0 {
		return nil
	}
	return env.Tasks[0].Result
}
