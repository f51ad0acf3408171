package ai

import (
	"context"
	"net/http"
)

// Provider is the interface every LLM deployment client satisfies. It covers
// one synchronous request/response round-trip; retries and streaming are not
// part of the contract.
type Provider interface {
	// SendMessage sends a chat request and returns the completed response.
	// Transport failures, non-2xx statuses, a cancelled context and
	// unsuccessful API envelopes are all returned as errors.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
