package gspmi

import "testing"

func TestAppendPairDoesNotAliasSiblings(t *testing.T) {
	prefix := []Pair{{Interval: 0, Element: "a"}}

	left := appendPair(prefix, Pair{Interval: 1, Element: "b"})
	right := appendPair(prefix, Pair{Interval: 2, Element: "c"})

	if left[1].Element != "b" || right[1].Element != "c" {
		t.Fatalf("sibling appends clobbered each other: left=%+v right=%+v", left, right)
	}
	if len(prefix) != 1 {
		t.Fatalf("appendPair mutated the shared prefix: %+v", prefix)
	}
}

func TestMineGateAFiltersBelowMinSupport(t *testing.T) {
	itemize := BucketItemize(86400)
	// Only one group contains "c", so its support is 1; min support 2
	// should exclude it from both recursion and emission.
	pdb := PDB{
		Group{seq(it(0, "c"))},
	}
	p := mineParams{
		itemize:           itemize,
		minSupport:        2,
		maxInterval:       Unbounded,
		maxWholeUnbounded: true,
	}

	got := mine(pdb, nil, 0, p)
	if len(got) != 0 {
		t.Fatalf("mine() = %+v, want no patterns below min_support", got)
	}
}

func TestMineGateBDelaysEmissionNotRecursion(t *testing.T) {
	// prefix=[(0,a)], whole span after the candidate pair is below
	// min_whole_interval, so the pattern itself must not be emitted, but
	// mine must still recurse into it (here finding nothing further,
	// which this test only checks does not panic or wrongly emit the
	// too-shallow pattern).
	itemize := BucketItemize(86400)
	pdb := PDB{
		Group{seq(it(0, "b"))},
		Group{seq(it(0, "b"))},
	}
	p := mineParams{
		itemize:           itemize,
		minSupport:        2,
		maxInterval:       Unbounded,
		minWholeQ:         5, // unreachable given a zero-gap candidate
		maxWholeUnbounded: true,
	}

	got := mine(pdb, []Pair{{Interval: 0, Element: "a"}}, 0, p)
	for _, pat := range got {
		if pat.WholeInterval < p.minWholeQ {
			t.Errorf("emitted pattern below min_whole_interval: %+v", pat)
		}
	}
}
