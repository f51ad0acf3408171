// Package middleware provides built-in middlewares for the report client.
// Each constructor returns a [client.Middleware] ready to pass to
// [client.WithMiddleware].
//
// # Available Middleware
//
//   - [NewTimeoutMiddleware]: adds a per-request deadline via
//     context.WithTimeout so a stalled deployment does not block the caller.
//
//   - [NewLoggingMiddleware]: emits slog entries before and after every
//     provider call, at three verbosity levels (Minimal, Standard, Verbose).
//
//   - [NewCacheMiddleware]: keeps successful responses in an in-process LRU
//     keyed by a digest of the request, so replaying a batch does not pay
//     for identical calls twice.
//
// # Usage
//
//	cache, err := middleware.NewCacheMiddleware(64)
//	if err != nil {
//	    return err
//	}
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	        cache,
//	        middleware.NewTimeoutMiddleware(2*time.Minute),
//	    ),
//	)
//
// The first entry is the outermost wrapper. In the example a request travels
// Logging, Cache, Timeout, Provider, so cache hits are still logged and the
// deadline only covers real network calls.
package middleware
