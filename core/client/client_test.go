package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/leofalp/llmreport/core/extract"
	"github.com/leofalp/llmreport/providers/ai"
)

// TestNew_NilProvider verifies that a nil provider is rejected.
func TestNew_NilProvider(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

// TestNew_NilMiddleware verifies that a nil middleware is rejected up front.
func TestNew_NilMiddleware(t *testing.T) {
	if _, err := New(&mockProvider{}, WithMiddleware(nil)); err == nil {
		t.Fatal("expected error for nil middleware")
	}
}

// TestSendMessage_EmptyPrompt verifies that an empty prompt never reaches the
// provider.
func TestSendMessage_EmptyPrompt(t *testing.T) {
	provider := &mockProvider{}
	c, err := New(provider)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.SendMessage(context.Background(), "")
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("error = %v, want ErrEmptyPrompt", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times", provider.calls)
	}
}

// TestSendMessage_BuildsRequest verifies that options are carried onto the
// request and that the marker instructions are appended by default.
func TestSendMessage_BuildsRequest(t *testing.T) {
	provider := &mockProvider{response: &ai.ChatResponse{Content: "reply"}}
	temperature := 0.7

	c, err := New(provider,
		WithSystemPrompt("system"),
		WithModel("deployment-model"),
		WithGenerationConfig(ai.GenerationConfig{Temperature: &temperature, MaxTokens: 4000}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	attachment := ai.Attachment{Name: "a.json", MediaType: ai.MediaTypeJSON, Content: "{}"}
	resp, err := c.SendMessage(context.Background(), "Correlate the documents.", attachment)
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if resp.Content != "reply" {
		t.Errorf("Content = %q", resp.Content)
	}

	req := provider.lastRequest
	if req.SystemPrompt != "system" || req.Model != "deployment-model" {
		t.Errorf("request = %+v", req)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.MaxTokens != 4000 || *req.GenerationConfig.Temperature != 0.7 {
		t.Errorf("generation config = %+v", req.GenerationConfig)
	}
	if len(req.Attachments) != 1 || req.Attachments[0].Name != "a.json" {
		t.Errorf("attachments = %+v", req.Attachments)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != ai.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}

	content := req.Messages[0].Content
	if !strings.HasPrefix(content, "Correlate the documents.\n\n") {
		t.Errorf("prompt not preserved: %q", content)
	}
	if !strings.Contains(content, extract.StartMarker) || !strings.Contains(content, extract.EndMarker) {
		t.Errorf("marker instructions missing: %q", content)
	}
}

// TestSendMessage_WithoutMarkers verifies that the prompt is sent verbatim
// when report markers are disabled.
func TestSendMessage_WithoutMarkers(t *testing.T) {
	provider := &mockProvider{}
	c, err := New(provider, WithReportMarkers(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.SendMessage(context.Background(), "plain"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if got := provider.lastRequest.Messages[0].Content; got != "plain" {
		t.Errorf("content = %q, want %q", got, "plain")
	}
	if provider.lastRequest.GenerationConfig != nil {
		t.Error("expected nil generation config")
	}
}

// TestSendMessage_ProviderError verifies that provider errors pass through.
func TestSendMessage_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	c, err := New(&mockProvider{err: boom})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := c.SendMessage(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

// TestSendMessage_MiddlewareSeesRequest verifies that middlewares passed to
// New receive the assembled request.
func TestSendMessage_MiddlewareSeesRequest(t *testing.T) {
	var seen ai.ChatRequest
	spy := func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			seen = request
			return next(ctx, request)
		}
	}

	c, err := New(&mockProvider{}, WithModel("m"), WithMiddleware(spy))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.SendMessage(context.Background(), "x"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if seen.Model != "m" {
		t.Errorf("middleware saw model %q", seen.Model)
	}
}
