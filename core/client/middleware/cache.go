package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/leofalp/llmreport/core/client"
	"github.com/leofalp/llmreport/providers/ai"
)

// NewCacheMiddleware returns a middleware that memoises successful responses
// in an LRU of the given size. Requests are keyed by the SHA-256 of their JSON
// encoding, so any change to the prompt, attachments or generation settings
// is a miss. Errors are never cached. Callers receive a copy of the cached
// response.
func NewCacheMiddleware(size int) (client.Middleware, error) {
	cache, err := lru.New[string, ai.ChatResponse](size)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}

	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			key, err := requestKey(request)
			if err != nil {
				return next(ctx, request)
			}

			if cached, ok := cache.Get(key); ok {
				return copyResponse(cached), nil
			}

			response, err := next(ctx, request)
			if err != nil {
				return nil, err
			}
			if response != nil {
				cache.Add(key, *copyResponse(*response))
			}
			return response, nil
		}
	}, nil
}

func requestKey(request ai.ChatRequest) (string, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func copyResponse(r ai.ChatResponse) *ai.ChatResponse {
	if r.Usage != nil {
		usage := *r.Usage
		r.Usage = &usage
	}
	return &r
}
