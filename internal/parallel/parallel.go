// Package parallel provides chunked parallel iteration for CPU-bound sweeps.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
	MaxChunkSize int  // Maximum items per chunk for ForRange; 0 means unbounded.
}

// DefaultConfig returns sensible defaults based on GOMAXPROCS.
func DefaultConfig() Config {
	n := runtime.GOMAXPROCS(0)
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
		MaxChunkSize: 1 << 20,
	}
}

func (c Config) workers() int {
	if !c.Enabled || c.NumWorkers < 1 {
		return 1
	}
	return c.NumWorkers
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.workers() == 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForRange splits [lo, hi) into chunks and calls f(ctx, start, end) for each,
// running at most cfg.NumWorkers chunks at a time. The first error cancels
// the context passed to the remaining chunks and is returned; cancellation of
// ctx stops the sweep with ctx.Err().
func ForRange(ctx context.Context, lo, hi uint64, f func(ctx context.Context, start, end uint64) error, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if hi <= lo {
		return nil
	}
	n := hi - lo
	workers := uint64(cfg.workers())

	chunk := (n + workers - 1) / workers
	if cfg.MaxChunkSize > 0 {
		chunk = min(chunk, uint64(cfg.MaxChunkSize))
	}
	chunk = max(chunk, uint64(max(cfg.MinChunkSize, 1)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(workers))
	for start := lo; start < hi && gctx.Err() == nil; start += chunk {
		end := min(start+chunk, hi)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, start, end)
		})
		if end == hi {
			break
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
