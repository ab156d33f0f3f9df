package gspmi

import "sort"

// postfixes implements the postfix generator (C2): given one sequence
// and a projector Pair, it produces the postfix(es) that result from
// matching the projector against the sequence.
//
// level1=true returns every postfix formed by each item whose element
// set contains projector.Element, in sequence order (the projector's
// Interval is ignored: during seeding any anchor matches). level1=false
// returns at most one postfix: the one produced at the first item
// (t, E) with projector.Element in E and itemize(t) == projector.Interval.
func postfixes(seq Sequence, projector Pair, level1 bool, itemize Itemize) []Postfix {
	if level1 {
		return postfixesLevel1(seq, projector.Element)
	}
	if pf, ok := postfixLevel2(seq, projector, itemize); ok {
		return []Postfix{pf}
	}
	return nil
}

func postfixesLevel1(seq Sequence, e Element) []Postfix {
	var out []Postfix
	for k, item := range seq {
		if !containsElement(item.Elements, e) {
			continue
		}
		if pf := buildPostfix(seq, k, e); len(pf) > 0 {
			out = append(out, pf)
		}
	}
	return out
}

// postfixLevel2 scans seq for the first item whose itemized interval
// equals projector.Interval and whose element set contains
// projector.Element. Because Item.Interval is non-decreasing within a
// Postfix (a consequence of how postfixes are constructed) and Itemize
// is monotonic non-decreasing, itemize(Interval) is non-decreasing
// along seq too: the scan first jumps to the earliest index whose
// itemized interval has reached projector.Interval, via exponential
// search, then performs the required exact-equality/element-membership
// check from there, stopping as soon as the itemized interval
// overshoots projector.Interval. This must return the same result as
// postfixLevel2Naive, which walks seq from the start; see
// TestPostfixScanMatchesNaive.
func postfixLevel2(seq Sequence, projector Pair, itemize Itemize) (Postfix, bool) {
	start := expSearchItemizeFloor(seq, itemize, projector.Interval)
	for k := start; k < len(seq); k++ {
		q := itemize(seq[k].Interval)
		if q > projector.Interval {
			break
		}
		if q == projector.Interval && containsElement(seq[k].Elements, projector.Element) {
			// The first matching item is authoritative even if it
			// produces an empty postfix: a later item matching the
			// same (interval, element) pair is never considered.
			pf := buildPostfix(seq, k, projector.Element)
			if len(pf) == 0 {
				return nil, false
			}
			return pf, true
		}
	}
	return nil, false
}

// postfixLevel2Naive is the literal left-to-right reading of the spec:
// no search, just a linear walk. Kept for equivalence testing against
// postfixLevel2's exponential-search fast path.
func postfixLevel2Naive(seq Sequence, projector Pair, itemize Itemize) (Postfix, bool) {
	for k, item := range seq {
		if itemize(item.Interval) == projector.Interval && containsElement(item.Elements, projector.Element) {
			pf := buildPostfix(seq, k, projector.Element)
			if len(pf) == 0 {
				return nil, false
			}
			return pf, true
		}
	}
	return nil, false
}

// expSearchItemizeFloor returns the smallest index k in seq such that
// itemize(seq[k].Interval) >= q, or len(seq) if none exists. It
// exponentially probes indices 0,1,3,7,... before finishing with
// binary search, matching the pattern of an endpoint-search over a
// monotonic sequence.
func expSearchItemizeFloor(seq Sequence, itemize Itemize, q int) int {
	n := len(seq)
	if n == 0 {
		return 0
	}
	idx, step := 0, 1
	for idx < n && itemize(seq[idx].Interval) < q {
		idx += step
		step *= 2
	}
	lo := idx - step/2
	if lo < 0 {
		lo = 0
	}
	hi := idx
	if hi > n {
		hi = n
	}
	return lo + sort.Search(hi-lo, func(i int) bool { return itemize(seq[lo+i].Interval) >= q })
}

func containsElement(elems []Element, e Element) bool {
	for _, x := range elems {
		if x == e {
			return true
		}
	}
	return false
}

// buildPostfix constructs the postfix produced when element e is
// matched inside seq[k] (see the "Postfix" construction rules): a
// within-item residual of the strictly-greater elements of seq[k],
// if any, followed by every later item rebased relative to seq[k]'s
// interval.
func buildPostfix(seq Sequence, k int, e Element) Postfix {
	item := seq[k]
	pos := sort.Search(len(item.Elements), func(i int) bool { return !item.Elements[i].Less(e) })

	var out Postfix
	if pos+1 < len(item.Elements) {
		residual := make([]Element, len(item.Elements)-(pos+1))
		copy(residual, item.Elements[pos+1:])
		out = append(out, Item{Interval: 0, Elements: residual})
	}
	anchor := item.Interval
	for _, later := range seq[k+1:] {
		out = append(out, Item{Interval: later.Interval - anchor, Elements: later.Elements})
	}
	return out
}
