// gspmi-mine mines interval sequential patterns from a CSV sequence
// table and prints the result as a text table or JSON. It owns no
// mining logic: it is a thin wrapper around tabular.ReadSequences,
// gspmi.Mine, and report.WriteTable/WriteJSON.
package main

import (
	"context"
	"flag"
	"math"
	"os"
	"runtime"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/grailbio/gspmi"
	"github.com/grailbio/gspmi/report"
	"github.com/grailbio/gspmi/tabular"
)

var (
	inputPath   = flag.String("input", "", "Path to the CSV sequence table (sequence,interval,elements); '-' reads stdin")
	minSupport  = flag.Float64("min-support", 1, "Minimum support: a fraction of the database size if strictly between 0 and 1, otherwise an absolute sequence count")
	minInterval = flag.Int("min-interval", 0, "Lower bound on the raw gap between consecutive pairs")
	maxInterval = flag.Int("max-interval", 0, "Upper bound on the raw gap between consecutive pairs; 0 means unbounded")
	minWhole    = flag.Int("min-whole-interval", 0, "Lower bound on the quantized whole-pattern span")
	maxWhole    = flag.Int("max-whole-interval", 0, "Upper bound on the quantized whole-pattern span; 0 means unbounded")
	bucketSize  = flag.Int("bucket-size", 1, "Itemize bucket size: floor(interval / bucket-size)")
	log2Itemize = flag.Bool("log2-itemize", false, "Use floor(log2(interval+1)) instead of bucket itemization")
	parallel    = flag.Bool("parallel", false, "Mine level-1 seeds across a worker pool")
	nWorkers    = flag.Int("workers", 0, "Worker count when -parallel is set; 0 means runtime.NumCPU()")
	format      = flag.String("format", "table", "Output format: 'table' or 'json'")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if *inputPath == "" {
		log.Fatalf("gspmi-mine: -input is required")
	}

	r := os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("gspmi-mine: %v", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := tabular.ReadSequences(r)
	if err != nil {
		log.Fatalf("gspmi-mine: %v", err)
	}

	itemize := gspmi.BucketItemize(*bucketSize)
	if *log2Itemize {
		itemize = gspmi.Log2Itemize()
	}

	opts := gspmi.NewOptions(supportFromFlag(*minSupport))
	opts.MinInterval = *minInterval
	if *maxInterval > 0 {
		opts.MaxInterval = *maxInterval
	}
	opts.MinWholeInterval = *minWhole
	if *maxWhole > 0 {
		opts.MaxWholeInterval = *maxWhole
	}
	opts.Parallel = *parallel
	opts.NWorkers = *nWorkers

	log.Printf("gspmi-mine: mining %d sequences (parallel=%v, workers=%d)", len(raw), opts.Parallel, resolvedWorkers(*nWorkers))

	patterns, err := gspmi.Mine(context.Background(), raw, itemize, opts)
	if err != nil {
		log.Fatalf("gspmi-mine: %v", err)
	}

	log.Printf("gspmi-mine: found %d patterns", len(patterns))

	switch *format {
	case "json":
		err = report.WriteJSON(os.Stdout, patterns)
	default:
		err = report.WriteTable(os.Stdout, patterns)
	}
	if err != nil {
		log.Fatalf("gspmi-mine: %v", err)
	}
}

// supportFromFlag treats any value strictly between 0 and 1 as a
// fraction of the database size and everything else (including the
// default, 1) as an absolute sequence count, since "-min-support=1"
// overwhelmingly means "at least one sequence" rather than "100% of
// the database".
func supportFromFlag(v float64) gspmi.Support {
	if v > 0 && v < 1 {
		return gspmi.SupportFraction(v)
	}
	return gspmi.SupportCount(int(math.Round(v)))
}

func resolvedWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}
