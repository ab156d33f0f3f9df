package gspmi

import "sort"

// NewOptions returns the documented defaults for every field except
// MinSupport: MinInterval=0, MaxInterval=Unbounded, MinWholeInterval=0,
// MaxWholeInterval=Unbounded, Parallel=false, NWorkers=auto.
func NewOptions(minSupport Support) Options {
	return Options{
		MinSupport:       minSupport,
		MaxInterval:      Unbounded,
		MaxWholeInterval: Unbounded,
	}
}

// normalize maps raw (interval, element-set) tuples to the engine's
// Item entity (C7). An empty database is valid input and normalizes to
// an empty slice. Each sequence's items must already be in
// non-decreasing Interval order and every item must have a non-empty
// element set; violations are reported as an InputError.
func normalize(raw []RawSequence) ([]Sequence, error) {
	out := make([]Sequence, len(raw))
	for i, rs := range raw {
		seq := make(Sequence, len(rs))
		prevInterval := 0
		for j, ri := range rs {
			if len(ri.Elements) == 0 {
				return nil, inputErrorf("sequence %d item %d has an empty element set", i, j)
			}
			if j > 0 && ri.Interval < prevInterval {
				return nil, inputErrorf("sequence %d item %d interval %d precedes previous item's interval %d", i, j, ri.Interval, prevInterval)
			}
			seq[j] = Item{Interval: ri.Interval, Elements: dedupSortElements(ri.Elements)}
			prevInterval = ri.Interval
		}
		out[i] = seq
	}
	return out, nil
}

// dedupSortElements converts raw string labels into a sorted,
// deduplicated Element slice, fixing the total order used throughout
// the engine for within-item matching.
func dedupSortElements(labels []string) []Element {
	seen := make(map[string]bool, len(labels))
	elems := make([]Element, 0, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		elems = append(elems, Element(l))
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i].Less(elems[j]) })
	return elems
}

// Renormalize is the identity on already-normalized databases: passing
// a []Sequence that is already in the engine's shape back through
// normalization round-trips to the same database. It exists so callers
// that already hold []Sequence (rather than []RawSequence) can still
// validate it without reconstructing RawSequence tuples.
func Renormalize(seqs []Sequence) ([]Sequence, error) {
	raw := make([]RawSequence, len(seqs))
	for i, seq := range seqs {
		ri := make(RawSequence, len(seq))
		for j, it := range seq {
			labels := make([]string, len(it.Elements))
			for k, e := range it.Elements {
				labels[k] = string(e)
			}
			ri[j] = RawItem{Interval: it.Interval, Elements: labels}
		}
		raw[i] = ri
	}
	return normalize(raw)
}
