package abacus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/leofalp/llmreport/internal/utils"
	"github.com/leofalp/llmreport/providers/ai"
)

const (
	// defaultBaseURL is the v0 REST API root.
	defaultBaseURL = "https://api.abacus.ai/api/v0"

	chatEndpoint = "/getChatResponse"

	apiKeyHeader = "apiKey"
)

var (
	// ErrMissingDeployment is returned before any network call when no
	// deployment ID is configured.
	ErrMissingDeployment = errors.New("abacus: deployment ID is not set")

	// ErrEmptyResponse is returned when the API reports success but carries
	// no messages.
	ErrEmptyResponse = errors.New("abacus: response contains no messages")
)

// Provider implements [ai.Provider] for one Abacus.AI deployment. Use [New]
// to construct it from the environment.
type Provider struct {
	apiKey          string
	baseURL         string
	deploymentID    string
	deploymentToken string
	client          *http.Client
}

// New returns a Provider initialised from ABACUS_API_KEY,
// ABACUS_DEPLOYMENT_ID, ABACUS_DEPLOYMENT_TOKEN and ABACUS_BASE_URL. The base
// URL defaults to https://api.abacus.ai/api/v0.
func New() *Provider {
	baseURL := os.Getenv("ABACUS_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:          os.Getenv("ABACUS_API_KEY"),
		baseURL:         baseURL,
		deploymentID:    os.Getenv("ABACUS_DEPLOYMENT_ID"),
		deploymentToken: os.Getenv("ABACUS_DEPLOYMENT_TOKEN"),
		client:          &http.Client{},
	}
}

// WithAPIKey sets the API key sent in the apiKey header.
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL overrides the API root.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient replaces the HTTP client used for API calls.
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// WithDeployment sets the deployment ID and optional deployment token. It
// returns *Provider so it can be chained before the ai.Provider setters.
func (p *Provider) WithDeployment(id, token string) *Provider {
	p.deploymentID = id
	p.deploymentToken = token
	return p
}

// SendMessage implements [ai.Provider]. The content of the response is the
// text of the last message returned by the deployment.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.deploymentID == "" {
		return nil, ErrMissingDeployment
	}

	body, err := requestToAbacus(request, p.deploymentID, p.deploymentToken)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	if p.apiKey != "" {
		headers.Set(apiKeyHeader, p.apiKey)
	}

	httpResponse, resp, err := utils.DoPostSync[chatResponse](ctx, p.client, p.baseURL+chatEndpoint, headers, body)
	if err != nil {
		return nil, fmt.Errorf("abacus: getChatResponse: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("abacus: empty response body: %s", httpResponse.Status)
	}

	return responseToGeneric(*resp, request.Model)
}

// requestToAbacus maps the generic request to the deployment wire format.
// A system prompt becomes a leading non-user message, and attachments are
// appended to the last user message.
func requestToAbacus(request ai.ChatRequest, deploymentID, deploymentToken string) (chatRequest, error) {
	lastUser := request.LastUserIndex()
	if lastUser < 0 {
		return chatRequest{}, errors.New("abacus: request has no user message")
	}

	messages := make([]chatMessage, 0, len(request.Messages)+1)
	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{IsUser: false, Text: request.SystemPrompt})
	}

	for i, m := range request.Messages {
		text := m.Content
		if i == lastUser && len(request.Attachments) > 0 {
			text += "\n\n" + ai.FormatAttachments(request.Attachments)
		}
		messages = append(messages, chatMessage{IsUser: m.Role == ai.RoleUser, Text: text})
	}

	out := chatRequest{
		DeploymentID:    deploymentID,
		DeploymentToken: deploymentToken,
		Messages:        messages,
	}
	if cfg := request.GenerationConfig; cfg != nil {
		out.Temperature = cfg.Temperature
		out.NumCompletionTokens = cfg.MaxTokens
	}

	return out, nil
}

func responseToGeneric(resp chatResponse, model string) (*ai.ChatResponse, error) {
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("abacus: request unsuccessful: %s", msg)
	}

	if len(resp.Result.Messages) == 0 {
		return nil, ErrEmptyResponse
	}

	last := resp.Result.Messages[len(resp.Result.Messages)-1]
	return &ai.ChatResponse{
		Model:        model,
		Content:      last.Text,
		FinishReason: "stop",
	}, nil
}
