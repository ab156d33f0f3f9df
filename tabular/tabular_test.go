package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/gspmi"
)

// TestTabularRoundTrip checks that a CSV table encoding the same
// sequences as a hand-built []gspmi.RawSequence parses into an
// equivalent value.
func TestTabularRoundTrip(t *testing.T) {
	csvData := "sequence,interval,elements\n" +
		"s1,0,a\n" +
		"s1,86400,a|b|c\n" +
		"s1,259200,a|c\n" +
		"s2,0,a|d\n" +
		"s2,259200,c\n"

	got, err := ReadSequences(strings.NewReader(csvData))
	assert.NoError(t, err)

	want := []gspmi.RawSequence{
		{
			{Interval: 0, Elements: []string{"a"}},
			{Interval: 86400, Elements: []string{"a", "b", "c"}},
			{Interval: 259200, Elements: []string{"a", "c"}},
		},
		{
			{Interval: 0, Elements: []string{"a", "d"}},
			{Interval: 259200, Elements: []string{"c"}},
		},
	}
	assert.Equal(t, want, got)
}

func TestTabularRejectsMissingColumns(t *testing.T) {
	_, err := ReadSequences(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestTabularRejectsEmptyElementsCell(t *testing.T) {
	csvData := "sequence,interval,elements\ns1,0,\n"
	_, err := ReadSequences(strings.NewReader(csvData))
	assert.Error(t, err)
	var inputErr *gspmi.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestTabularRejectsNonContiguousSequence(t *testing.T) {
	csvData := "sequence,interval,elements\n" +
		"s1,0,a\n" +
		"s2,0,b\n" +
		"s1,1,c\n"
	_, err := ReadSequences(strings.NewReader(csvData))
	assert.Error(t, err)
	var inputErr *gspmi.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestTabularRejectsNonMonotonicInterval(t *testing.T) {
	csvData := "sequence,interval,elements\n" +
		"s1,10,a\n" +
		"s1,5,b\n"
	_, err := ReadSequences(strings.NewReader(csvData))
	assert.Error(t, err)
	var inputErr *gspmi.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestTabularRejectsNonIntegerInterval(t *testing.T) {
	csvData := "sequence,interval,elements\ns1,soon,a\n"
	_, err := ReadSequences(strings.NewReader(csvData))
	assert.Error(t, err)
	var inputErr *gspmi.InputError
	assert.ErrorAs(t, err, &inputErr)
}
