// Package parallel provides a small fixed-size worker pool used to fan
// out independent, CPU-bound jobs across goroutines. It intentionally
// does not scale dynamically or steal work: callers that reach for it
// already know the job count and shape up front (one job per mining
// seed), so a fixed pool sized to the caller's concurrency budget is
// all that is needed.
package parallel

import (
	"runtime"
	"sync"
)

// Run executes each of jobs on a pool of workers goroutines and
// returns their results indexed the same way as jobs, regardless of
// which worker finishes which job first. workers <= 0 defaults to
// runtime.NumCPU(); a workers count larger than len(jobs) is clamped
// down to len(jobs).
func Run[T any](workers int, jobs []func() T) []T {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]T, len(jobs))
	if workers <= 0 {
		return results
	}

	type task struct {
		index int
		job   func() T
	}
	taskCh := make(chan task, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				results[t.index] = t.job()
			}
		}()
	}

	for i, job := range jobs {
		taskCh <- task{index: i, job: job}
	}
	close(taskCh)
	wg.Wait()

	return results
}
