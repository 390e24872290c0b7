package writer

import "sync"

// runPool runs fn once per index in [0, n) across workerCount goroutines,
// collecting each result into a slice ordered by index. It is the batch
// counterpart of a long-lived work queue: the leaf count is known up
// front, so the pool fans work out and joins rather than running
// indefinitely (§4.3, §5: per-leaf transforms are independent and may
// parallelize, but results must be assembled in input order).
func runPool[T any](n, workerCount int, fn func(i int) T) []T {
	results := make([]T, n)
	if n == 0 {
		return results
	}
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > n {
		workerCount = n
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = fn(i)
			}
		}()
	}
	wg.Wait()

	return results
}
