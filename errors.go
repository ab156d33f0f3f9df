package gspmi

import "github.com/pkg/errors"

// ConfigError reports a problem with the Options passed to Mine,
// detected before any mining work starts.
type ConfigError struct {
	cause error
}

func (e *ConfigError) Error() string { return "gspmi: config: " + e.cause.Error() }
func (e *ConfigError) Unwrap() error { return e.cause }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{cause: errors.Errorf(format, args...)}
}

// InputError reports malformed input: an item with an empty element
// set, or intervals within a sequence that are not non-decreasing.
// tabular.ReadSequences returns the same type for malformed rows.
type InputError struct {
	cause error
}

func (e *InputError) Error() string { return "gspmi: input: " + e.cause.Error() }
func (e *InputError) Unwrap() error { return e.cause }

func inputErrorf(format string, args ...interface{}) error {
	return &InputError{cause: errors.Errorf(format, args...)}
}

// NewInputError builds an *InputError, exported so external
// collaborators (such as the tabular reader) that produce RawSequence
// tuples outside of gspmi.Mine can report malformed input using the
// same error family Mine itself uses.
func NewInputError(format string, args ...interface{}) error {
	return inputErrorf(format, args...)
}
