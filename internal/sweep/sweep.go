// internal/sweep/sweep.go
package sweep

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EvalFunc evaluates point i with parameter value v.
type EvalFunc[T any] func(ctx context.Context, i int, v float64) (T, error)

// EmitFunc receives results in index order.
type EmitFunc[T any] func(i int, out T) error

type result[T any] struct {
	i   int
	out T
}

// Run evaluates every value on up to threads workers (0 = all CPUs) and calls
// emit in index order. It returns the first error from eval, emit or ctx.
func Run[T any](ctx context.Context, threads int, values []float64, eval EvalFunc[T], emit EmitFunc[T]) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(values) {
		threads = len(values)
	}
	if threads == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int, threads)
	results := make(chan result[T], threads)

	// Feeder
	g.Go(func() error {
		defer close(jobs)
		for i := range values {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := eval(gctx, i, values[i])
				if err != nil {
					return err
				}
				select {
				case results <- result[T]{i: i, out: out}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Ordered emitter
	g.Go(func() error {
		pending := make(map[int]T, threads)
		next := 0
		for r := range results {
			pending[r.i] = r.out
			for {
				out, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := emit(next, out); err != nil {
					return err
				}
				next++
			}
		}
		return gctx.Err()
	})

	return g.Wait()
}
