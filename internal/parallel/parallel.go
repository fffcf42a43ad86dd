// Package parallel provides range partitioning and bounded parallel execution
// for elementwise array operations.
package parallel

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/born-ml/ndarray/internal/envconfig"
)

// Errors reported by the executor.
var (
	ErrInvalidSplits = errors.New("invalid split request")
	ErrWorkerPanic   = errors.New("parallel worker panicked")
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults taken from the environment, falling back to
// the CPU count and a cache-friendly minimum chunk.
func DefaultConfig() Config {
	n := max(int(envconfig.NumWorkers()), 1)
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: int(envconfig.MinChunk()),
	}
}

// Workers returns how many ranges n items are split into under c.
// It is 1 whenever parallelism is disabled or n is too small to share.
func (c Config) Workers(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < c.MinChunkSize {
		return 1
	}
	w := c.NumWorkers
	if c.MinChunkSize > 0 {
		w = min(w, n/c.MinChunkSize)
	}
	return max(w, 1)
}

// ForRanges partitions [0, n) with SplitRanges and runs fn once per non-empty
// range, each in its own goroutine. It returns after every call has finished.
// The first error (or recovered panic, wrapped in ErrWorkerPanic) is returned.
//
// Ranges are disjoint, so fn may write to per-index output slots without
// further synchronization.
func ForRanges(n int, cfg Config, fn func(r Range) error) error {
	workers := cfg.Workers(n)
	if workers == 1 {
		return run(fn, Range{Start: 0, End: n})
	}

	ranges, err := SplitRanges(n, workers)
	if err != nil {
		return err
	}
	slog.Debug("parallel dispatch", "n", n, "workers", workers, "ranges", len(ranges))

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range ranges {
		if r.Len() == 0 {
			continue
		}
		g.Go(func() error {
			return run(fn, r)
		})
	}
	return g.Wait()
}

func run(fn func(r Range) error, r Range) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: range %v: %v", ErrWorkerPanic, r, p)
		}
	}()
	return fn(r)
}
