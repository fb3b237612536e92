// Package parallel provides the fork-join fan-out used by the Ember kernels.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
//
// Every call blocks until all partitions complete. Callers must ensure each i
// writes only its own disjoint output region; For adds no synchronization of
// its own beyond the join barrier.
//
// A panic in any f(i) is recovered and surfaced as a single error for the
// whole call. The output buffer the caller partitioned across tasks must be
// discarded on error; no partial result is usable.
func For(n int, f func(i int), cfg Config) error {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		return runGuarded(0, n, f)
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var mu sync.Mutex
	var firstErr error

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if err := runGuarded(s, e, f); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(start, end)
	}
	wg.Wait()
	return firstErr
}

// runGuarded executes f over [s, e) converting a panic into an error.
func runGuarded(s, e int, f func(i int)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	for i := s; i < e; i++ {
		f(i)
	}
	return nil
}
