// Package workpool splits index ranges across a bounded set of goroutines.
//
// Vertex passes are embarrassingly parallel: every index is independent, so a
// pass is cut into contiguous chunks and each chunk runs on its own goroutine.
// Range returns only after every chunk has finished.
package workpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinChunk is the smallest number of indices handed to a single goroutine.
// Smaller passes run inline on the caller.
const MinChunk = 2048

// Pool runs chunked index ranges with a fixed concurrency limit.
type Pool struct {
	workers int
}

// New creates a pool. workers <= 0 selects GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int {
	return p.workers
}

// Range calls fn over [0, n) split into contiguous [lo, hi) chunks.
// The first non-nil error is returned after all chunks complete.
func (p *Pool) Range(n int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if p.workers == 1 || n <= MinChunk {
		return fn(0, n)
	}

	chunk := (n + p.workers - 1) / p.workers
	if chunk < MinChunk {
		chunk = MinChunk
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}
	return g.Wait()
}
