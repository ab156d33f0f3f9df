// Package report renders mined patterns for human consumption. It is
// a downstream collaborator only: it never participates in mining, and
// the sort order it imposes for display purposes is never visible to
// (or relied on by) the core engine, whose result contract is
// unordered.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	farm "github.com/dgryski/go-farm"

	"github.com/grailbio/gspmi"
)

// sortedCopy returns patterns ordered by descending support, then
// ascending whole interval, then lexicographically by rendered
// sequence, so that WriteTable's output is deterministic regardless of
// the order Mine happened to return them in.
func sortedCopy(patterns []gspmi.Pattern) []gspmi.Pattern {
	out := make([]gspmi.Pattern, len(patterns))
	copy(out, patterns)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Support != out[j].Support {
			return out[i].Support > out[j].Support
		}
		if out[i].WholeInterval != out[j].WholeInterval {
			return out[i].WholeInterval < out[j].WholeInterval
		}
		return formatSequence(out[i].Sequence) < formatSequence(out[j].Sequence)
	})
	return out
}

// WriteTable renders patterns as a column-aligned text table: one row
// per pattern holding its pair sequence, support, and whole interval.
func WriteTable(w io.Writer, patterns []gspmi.Pattern) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "SEQUENCE\tSUPPORT\tWHOLE_INTERVAL"); err != nil {
		return err
	}
	for _, p := range sortedCopy(patterns) {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\n", formatSequence(p.Sequence), p.Support, p.WholeInterval); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteJSON renders patterns as a JSON array, in the same deterministic
// order WriteTable uses.
func WriteJSON(w io.Writer, patterns []gspmi.Pattern) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sortedCopy(patterns))
}

func formatSequence(seq []gspmi.Pair) string {
	parts := make([]string, len(seq))
	for i, pair := range seq {
		parts[i] = "(" + strconv.Itoa(pair.Interval) + "," + string(pair.Element) + ")"
	}
	return strings.Join(parts, "->")
}

// Fingerprint returns a stable 64-bit hash of a pattern's pair
// sequence, independent of Support and WholeInterval. Callers merging
// patterns mined from multiple runs (e.g. sharded input, or serial vs.
// parallel mode during a consistency check) can use it as a cheap
// dedup key instead of comparing full pair slices.
func Fingerprint(p gspmi.Pattern) uint64 {
	return farm.Hash64([]byte(formatSequence(p.Sequence)))
}
