package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the text model produced no text.
	ErrEmptyResponse = errors.New("empty response")
	// ErrIncompleteRecord is returned when required fields are missing or invalid.
	ErrIncompleteRecord = errors.New("incomplete record")
	// ErrFilterIgnored is returned when the record contradicts a requested filter.
	ErrFilterIgnored = errors.New("filter not honored")
)

// SynthesisError reports a failed text synthesis. It is the only error
// returned by a Synthesizer.
type SynthesisError struct {
	Op  string
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesize %s: %v", e.Op, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

func synthesisErr(op string, err error) error {
	return &SynthesisError{Op: op, Err: err}
}
