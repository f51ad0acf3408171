// Package batch runs one function over many inputs with bounded
// concurrency, collecting every failure instead of stopping at the first.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Func processes a single input.
type Func func(ctx context.Context, input string) error

// Run calls fn for each input with at most workers calls in flight. A
// workers value below 1 means one. Failures are wrapped with their input and
// joined; they never cancel the other inputs. Inputs not yet started when ctx
// is cancelled are reported with the context error.
func Run(ctx context.Context, inputs []string, workers int, fn Func) error {
	if workers < 1 {
		workers = 1
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(input string, err error) {
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", input, err))
		mu.Unlock()
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				record(input, err)
				return nil
			}
			if err := fn(ctx, input); err != nil {
				record(input, err)
			}
			return nil
		})
	}

	_ = g.Wait()
	return errors.Join(errs...)
}
