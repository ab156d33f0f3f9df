package gspmi

import (
	"context"
	"sort"
)

// seed is a level-1 candidate: a single frequent element plus the
// number of source sequences it occurs in.
type seed struct {
	element Element
	support int
}

// collectSeeds implements the frequency-counting half of the seeding
// driver (C6): it scans every sequence for its distinct elements,
// accumulates a global element -> sequence-count map, and returns the
// elements meeting minSupport in a stable (lexicographic) order so
// that mining is deterministic given a stable element ordering.
func collectSeeds(sequences []Sequence, minSupport int) []seed {
	counts := make(map[Element]int)
	for _, seq := range sequences {
		seen := make(map[Element]bool)
		for _, item := range seq {
			for _, e := range item.Elements {
				if !seen[e] {
					seen[e] = true
					counts[e]++
				}
			}
		}
	}

	elements := make([]Element, 0, len(counts))
	for e := range counts {
		elements = append(elements, e)
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].Less(elements[j]) })

	var seeds []seed
	for _, e := range elements {
		if sup := counts[e]; sup >= minSupport {
			seeds = append(seeds, seed{element: e, support: sup})
		}
	}
	return seeds
}

// mineSeed runs the remainder of the seeding driver (C6) for a single
// frequent element: it emits the base single-pair pattern when the
// (raw, un-itemized) MinWholeInterval bound allows a zero-span pattern,
// builds the level-1 projected database, and if that PDB is non-empty
// recurses via the miner (C5) with prefix=[seed pair].
//
// The base-pattern gate intentionally tests the raw MinWholeInterval
// against zero rather than itemize(MinWholeInterval): a seed pair's
// interval is 0 by construction, so the reference implementation's
// gate reduces to "MinWholeInterval <= 0" and this engine preserves
// that behavior (see the Open Question in the design notes).
func mineSeed(sequences []Sequence, s seed, rawMinWholeInterval int, p mineParams) []Pattern {
	pair := Pair{Interval: 0, Element: s.element}

	var results []Pattern
	if rawMinWholeInterval <= 0 {
		results = append(results, Pattern{
			Sequence:      []Pair{pair},
			Support:       s.support,
			WholeInterval: 0,
		})
	}

	pdb := buildLevel1PDB(sequences, s.element)
	if len(pdb) == 0 {
		return results
	}

	results = append(results, mine(pdb, []Pair{pair}, 0, p)...)
	return results
}

// buildLevel1PDB applies the postfix generator in level-1 mode to
// every input sequence and keeps the sequences (as groups) that
// produced at least one postfix.
func buildLevel1PDB(sequences []Sequence, e Element) PDB {
	var pdb PDB
	for _, seq := range sequences {
		if pfs := postfixesLevel1(seq, e); len(pfs) > 0 {
			pdb = append(pdb, Group(pfs))
		}
	}
	return pdb
}

// Mine is the engine's single entry point (§6). It normalizes raw
// input (C7), resolves MinSupport against the database size, then
// drives the seeding driver (C6) either serially or, when
// Options.Parallel is set, fanned out across a worker pool (C8).
//
// ctx is never checked mid-recursion, per the engine's no-suspension
// concurrency model. The serial driver checks it before each seed; the
// parallel driver checks it once before dispatching any seed.
func Mine(ctx context.Context, raw []RawSequence, itemize Itemize, opts Options) ([]Pattern, error) {
	if itemize == nil {
		return nil, configErrorf("itemize function must not be nil")
	}
	if err := opts.normalizeBounds(); err != nil {
		return nil, err
	}

	sequences, err := normalize(raw)
	if err != nil {
		return nil, err
	}

	minSupport, err := opts.MinSupport.resolve(len(sequences))
	if err != nil {
		return nil, err
	}

	params := mineParams{
		itemize:     itemize,
		minSupport:  minSupport,
		minInterval: opts.MinInterval,
		maxInterval: opts.MaxInterval,
		minWholeQ:   itemize(opts.MinWholeInterval),
	}
	if opts.MaxWholeInterval >= Unbounded {
		params.maxWholeUnbounded = true
	} else {
		params.maxWholeQ = itemize(opts.MaxWholeInterval)
	}

	seeds := collectSeeds(sequences, minSupport)

	if opts.Parallel {
		patterns, ferr := mineParallel(ctx, sequences, seeds, opts.MinWholeInterval, params, opts.NWorkers)
		if ferr == nil {
			return patterns, nil
		}
		warnTransportFallback(ferr)
	}

	return mineSerial(ctx, sequences, seeds, opts.MinWholeInterval, params)
}

func mineSerial(ctx context.Context, sequences []Sequence, seeds []seed, rawMinWholeInterval int, p mineParams) ([]Pattern, error) {
	var results []Pattern
	for _, s := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, mineSeed(sequences, s, rawMinWholeInterval, p)...)
	}
	return results, nil
}
