package rain

import "sync"

const minRowsPerWorker = 8

// ParallelFor splits [0, n) into contiguous chunks and runs fn on each in
// its own goroutine. With one worker (or a small n) fn runs inline.
func ParallelFor(n, workers int, fn func(start, end int)) {
	if n <= minRowsPerWorker || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minRowsPerWorker < workers {
		workers = n / minRowsPerWorker
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
