package gspmi

// mineParams bundles the constraints the recursive miner (C5) checks
// at every candidate, already resolved to concrete integers (the
// min_support fraction resolved against the database size, the
// +infinity guards on the whole-interval bounds resolved to a flag
// instead of calling itemize on infinity).
type mineParams struct {
	itemize Itemize

	minSupport int

	minInterval int
	maxInterval int

	minWholeQ         int // itemize(MinWholeInterval)
	maxWholeQ         int // itemize(MaxWholeInterval), meaningless if maxWholeUnbounded
	maxWholeUnbounded bool
}

// mine implements the recursive miner (C5): it counts candidates
// extending prefix, recurses into every candidate that still has a
// chance of meeting the support threshold (Gate A), and emits the
// extended pattern itself once it also clears the whole-interval lower
// bound (Gate B). Emission happens after recursion so deeper patterns
// are explored even when prefix itself falls short of
// MinWholeInterval.
func mine(pdb PDB, prefix []Pair, prefixSum int, p mineParams) []Pattern {
	counts := countCandidates(pdb, p.minInterval, p.maxInterval, p.itemize)

	var results []Pattern
	for _, pair := range counts.order {
		sup := counts.support(pair)
		whole := prefixSum + pair.Interval

		if sup < p.minSupport {
			continue
		}
		if !p.maxWholeUnbounded && whole > p.maxWholeQ {
			continue
		}

		childPDB := project(pdb, pair, p.itemize)
		nextPrefix := appendPair(prefix, pair)

		results = append(results, mine(childPDB, nextPrefix, whole, p)...)

		if whole >= p.minWholeQ {
			results = append(results, Pattern{
				Sequence:      nextPrefix,
				Support:       sup,
				WholeInterval: whole,
			})
		}
	}
	return results
}

// appendPair returns prefix with pair appended, without aliasing
// prefix's backing array: sibling candidates at the same recursion
// level must not observe each other's extension.
func appendPair(prefix []Pair, pair Pair) []Pair {
	next := make([]Pair, len(prefix)+1)
	copy(next, prefix)
	next[len(prefix)] = pair
	return next
}
