// Package sweep provides the accuracy-sweep machinery cmd/inttrig's bench
// subcommand drives: comparing a Kernel's fixed-point output against the
// true floating-point function across the full angle domain, and doing it
// across a chunked range in parallel the way a larger harness would.
package sweep

import (
	"runtime"
	"sync"
)

// ParallelFor executes fn over disjoint sub-ranges of [0, n) concurrently,
// splitting into at most runtime.NumCPU() workers (or fewer once each
// worker's share would drop below minChunk). Falls back to a single
// synchronous call when n is too small to be worth splitting.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	maxWorkers := runtime.NumCPU()
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if n <= minChunk || maxWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := maxWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
