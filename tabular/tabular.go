// Package tabular is an external collaborator for the gspmi core: it
// reads a CSV table of (sequence, interval, elements) rows into the
// RawSequence/RawItem tuples gspmi.Mine accepts. It never touches the
// mining algorithm itself; it only produces the raw shape the core's
// normalizer (an internal concern of gspmi.Mine) consumes.
package tabular

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/grailbio/gspmi"
)

const (
	colSequence = "sequence"
	colInterval = "interval"
	colElements = "elements"
	// elementSep separates element labels within one row's elements cell.
	elementSep = "|"
)

// ReadSequences parses a CSV table with header
// "sequence,interval,elements" into RawSequences. Rows sharing a
// sequence id must be contiguous and non-decreasing in interval; a
// violation is reported as a *gspmi.InputError, the same error family
// gspmi.Mine itself raises for malformed input, so callers can
// type-switch on one error type regardless of which layer caught the
// problem.
func ReadSequences(r io.Reader) ([]gspmi.RawSequence, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "tabular: reading header")
	}
	seqIdx, intervalIdx, elemIdx, err := columnIndices(header)
	if err != nil {
		return nil, err
	}

	var (
		out          []gspmi.RawSequence
		idToIndex    = map[string]int{}
		lastSeqID    string
		haveLastSeq  bool
		prevInterval int
	)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "tabular: reading row")
		}

		seqID := record[seqIdx]
		interval, err := strconv.Atoi(strings.TrimSpace(record[intervalIdx]))
		if err != nil {
			return nil, gspmi.NewInputError("tabular: row with sequence %q has a non-integer interval %q", seqID, record[intervalIdx])
		}
		elements := splitElements(record[elemIdx])
		if len(elements) == 0 {
			return nil, gspmi.NewInputError("tabular: row with sequence %q has an empty elements cell", seqID)
		}

		idx, seenBefore := idToIndex[seqID]
		switch {
		case !seenBefore:
			idx = len(out)
			idToIndex[seqID] = idx
			out = append(out, nil)
		case haveLastSeq && seqID != lastSeqID:
			// A previously-seen sequence id reappearing after another
			// sequence's rows started would silently merge two unrelated
			// runs of rows into one group.
			return nil, gspmi.NewInputError("tabular: rows for sequence %q are not contiguous", seqID)
		case haveLastSeq && seqID == lastSeqID && interval < prevInterval:
			return nil, gspmi.NewInputError("tabular: sequence %q has a non-monotonic interval %d after %d", seqID, interval, prevInterval)
		}

		out[idx] = append(out[idx], gspmi.RawItem{Interval: interval, Elements: elements})
		lastSeqID = seqID
		prevInterval = interval
		haveLastSeq = true
	}

	return out, nil
}

func columnIndices(header []string) (seqIdx, intervalIdx, elemIdx int, err error) {
	seqIdx, intervalIdx, elemIdx = -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case colSequence:
			seqIdx = i
		case colInterval:
			intervalIdx = i
		case colElements:
			elemIdx = i
		}
	}
	if seqIdx < 0 || intervalIdx < 0 || elemIdx < 0 {
		return 0, 0, 0, errors.Errorf("tabular: header must contain %q, %q, %q columns, got %v", colSequence, colInterval, colElements, header)
	}
	return seqIdx, intervalIdx, elemIdx, nil
}

func splitElements(cell string) []string {
	parts := strings.Split(cell, elementSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// OpenS3 opens an object in Amazon S3 as a streaming source for
// ReadSequences, for callers whose sequence tables live in object
// storage rather than on local disk. The caller must close the
// returned reader.
func OpenS3(bucket, key string) (io.ReadCloser, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "tabular: creating AWS session")
	}
	client := s3.New(sess)
	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "tabular: get s3://%s/%s", bucket, key)
	}
	return out.Body, nil
}
