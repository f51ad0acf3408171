// Package abacus implements [ai.Provider] for a hosted Abacus.AI chat
// deployment, using the getChatResponse endpoint of the v0 REST API.
//
// The deployment is fixed server-side, so the request model name is
// informational only. Attachments are rendered with [ai.FormatAttachments]
// and appended to the last user message because the endpoint only accepts
// text turns.
//
//	provider := abacus.New().WithAPIKey(key)
//	resp, err := provider.SendMessage(ctx, ai.ChatRequest{
//	    Messages: []ai.Message{{Role: ai.RoleUser, Content: prompt}},
//	})
package abacus
