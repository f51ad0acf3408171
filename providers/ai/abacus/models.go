package abacus

// chatRequest is the getChatResponse request body.
type chatRequest struct {
	DeploymentID        string        `json:"deploymentId"`
	DeploymentToken     string        `json:"deploymentToken,omitempty"`
	Messages            []chatMessage `json:"messages"`
	Temperature         *float64      `json:"temperature,omitempty"`
	NumCompletionTokens int           `json:"numCompletionTokens,omitempty"`
}

type chatMessage struct {
	IsUser bool   `json:"is_user"`
	Text   string `json:"text"`
}

// chatResponse is the envelope returned by every v0 endpoint.
type chatResponse struct {
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
	Result  chatResult `json:"result"`
}

type chatResult struct {
	Messages []chatMessage `json:"messages"`
}
