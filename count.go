package gspmi

// orderedPairSet accumulates Pairs while preserving first-discovery
// order, which candidateCounts relies on to keep the mining recursion
// (C5) deterministic: "iteration order = insertion order of discovery".
type orderedPairSet struct {
	order []Pair
	seen  map[Pair]bool
}

func (s *orderedPairSet) add(p Pair) {
	if s.seen == nil {
		s.seen = make(map[Pair]bool)
	}
	if s.seen[p] {
		return
	}
	s.seen[p] = true
	s.order = append(s.order, p)
}

// pairCounts is the result of the candidate counter: a Pair -> support
// map plus the discovery order of its keys.
type pairCounts struct {
	order []Pair
	count map[Pair]int
}

func (c *pairCounts) support(p Pair) int { return c.count[p] }

// countCandidates implements the candidate counter (C4): for every
// group in pdb it walks each postfix left to right, and for every item
// whose gap from the previously visited item (within the same postfix)
// falls in [minInterval, maxInterval], it records one candidate Pair
// per element of that item. Each group contributes at most one count
// per distinct Pair, regardless of how many of its postfixes or items
// produce a match, so support measures the number of source sequences
// a candidate occurs in, not the raw match count.
func countCandidates(pdb PDB, minInterval, maxInterval int, itemize Itemize) *pairCounts {
	global := &orderedPairSet{}
	counts := make(map[Pair]int)

	for _, group := range pdb {
		local := &orderedPairSet{}
		for _, pf := range group {
			previous := 0
			for _, item := range pf {
				delta := item.Interval - previous
				if delta >= minInterval && delta <= maxInterval {
					q := itemize(item.Interval)
					for _, e := range item.Elements {
						local.add(Pair{Interval: q, Element: e})
					}
				}
				previous = item.Interval
			}
		}
		for _, p := range local.order {
			global.add(p)
			counts[p]++
		}
	}

	return &pairCounts{order: global.order, count: counts}
}
