package gspmi

import (
	"context"

	"github.com/grailbio/base/log"

	"github.com/grailbio/gspmi/internal/parallel"
)

// mineParallel implements the fan-out executor (C8): it dispatches
// mineSeed's per-seed body across a worker pool instead of running the
// seeding driver's loop serially. parallel.Run returns per-seed results
// indexed by seed, so they are concatenated in seed order, the same
// order the serial driver produces.
//
// If ctx is already done before any work is dispatched, mineParallel
// returns a transport error so the caller falls back to the serial
// driver rather than starting goroutines that would be cancelled
// immediately.
func mineParallel(ctx context.Context, sequences []Sequence, seeds []seed, rawMinWholeInterval int, p mineParams, nWorkers int) ([]Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobs := make([]func() []Pattern, len(seeds))
	for i, s := range seeds {
		s := s
		jobs[i] = func() []Pattern {
			return mineSeed(sequences, s, rawMinWholeInterval, p)
		}
	}

	perSeed := parallel.Run(nWorkers, jobs)

	var results []Pattern
	for _, ps := range perSeed {
		results = append(results, ps...)
	}
	return results, nil
}

// warnTransportFallback logs the transport-error warning described in
// the error handling design: the engine falls back to serial mining
// and still completes successfully.
func warnTransportFallback(err error) {
	log.Printf("gspmi: parallel mining unavailable, falling back to serial: %v", err)
}
