package clfparse

import (
	"errors"
	"fmt"
)

// Validation errors for individual CLF fields. A line failing any of these is
// counted and skipped; none of them aborts a run.
var (
	ErrAddressInvalid   = errors.New("invalid client address")
	ErrTimestampInvalid = errors.New("invalid timestamp")
	ErrRequestInvalid   = errors.New("invalid request line")
	ErrStatusInvalid    = errors.New("invalid status code")
	ErrSizeInvalid      = errors.New("invalid response size")
	ErrAgentInvalid     = errors.New("invalid user agent")
)

// MalformedLineError indicates a line that could not be tokenized, usually
// because of unbalanced quotes.
type MalformedLineError struct {
	Line string
}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf("unbalanced quotes or backslashes in %q", e.Line)
}

// FieldCountError indicates a line that tokenized cleanly but did not yield
// the nine fields of the Common Log Format.
type FieldCountError struct {
	Count int
}

func (e FieldCountError) Error() string {
	return fmt.Sprintf("line has %d fields instead of %d", e.Count, numFields)
}
