package client

import (
	"context"
	"errors"

	"github.com/leofalp/llmreport/providers/ai"
)

// ErrEmptyPrompt is returned by SendMessage for a blank prompt.
var ErrEmptyPrompt = errors.New("client: prompt is empty")

// Client sends report prompts to a provider. It is immutable after New and
// safe for concurrent use when its middlewares are.
type Client struct {
	provider      ai.Provider
	systemPrompt  string
	model         string
	generation    *ai.GenerationConfig
	reportMarkers bool
	middlewares   []Middleware
	send          SendFunc
}

// Option configures a Client.
type Option func(*Client)

// WithSystemPrompt sets the system prompt sent with every request.
func WithSystemPrompt(prompt string) Option {
	return func(c *Client) {
		c.systemPrompt = prompt
	}
}

// WithModel sets the model name carried on requests.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithGenerationConfig sets sampling parameters. The value is copied.
func WithGenerationConfig(cfg ai.GenerationConfig) Option {
	return func(c *Client) {
		c.generation = &cfg
	}
}

// WithMiddleware appends middlewares to the chain, outermost first.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// WithReportMarkers toggles the output-format instructions that ask the model
// to wrap its report in the extractor's start and end markers. Enabled by
// default.
func WithReportMarkers(enabled bool) Option {
	return func(c *Client) {
		c.reportMarkers = enabled
	}
}

// New returns a Client bound to provider.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, errors.New("client: provider is nil")
	}

	c := &Client{
		provider:      provider,
		reportMarkers: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, mw := range c.middlewares {
		if mw == nil {
			return nil, errors.New("client: nil middleware")
		}
	}

	c.send = buildSendChain(provider, c.middlewares)
	return c, nil
}

// SendMessage sends prompt with the given attachments as a single user turn
// and returns the provider's response unchanged.
func (c *Client) SendMessage(ctx context.Context, prompt string, attachments ...ai.Attachment) (*ai.ChatResponse, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	return c.send(ctx, c.buildRequest(prompt, attachments))
}

func (c *Client) buildRequest(prompt string, attachments []ai.Attachment) ai.ChatRequest {
	request := ai.ChatRequest{
		Model:        c.model,
		SystemPrompt: c.systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: buildPrompt(prompt, c.reportMarkers)},
		},
		Attachments: attachments,
	}
	if c.generation != nil {
		cfg := *c.generation
		request.GenerationConfig = &cfg
	}
	return request
}
