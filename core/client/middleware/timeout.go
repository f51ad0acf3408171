package middleware

import (
	"context"
	"time"

	"github.com/leofalp/llmreport/core/client"
	"github.com/leofalp/llmreport/providers/ai"
)

// NewTimeoutMiddleware returns a middleware that bounds each provider call by
// timeout. A caller context with a shorter deadline still wins. A
// non-positive timeout disables the middleware.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		if timeout <= 0 {
			return next
		}
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
