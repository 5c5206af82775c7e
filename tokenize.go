package clfparse

import (
	"bitbucket.org/creachadair/shell"
)

// Positional field indices within a tokenized CLF line. The timestamp
// occupies two tokens because splitting happens on whitespace.
const (
	fieldAddress = iota
	fieldIdentity
	fieldUserID
	fieldDate
	fieldZone
	fieldRequest
	fieldStatus
	fieldSize
	fieldAgent
	numFields
)

// Fields holds the nine tokens of one CLF line. The quoted fields (request
// and user agent) are single tokens with their quotes stripped.
type Fields [numFields]string

// SplitLine tokenizes a raw log line using shell-style word splitting, so
// that quoted fields containing internal spaces stay whole. It returns a
// MalformedLineError if quoting is unbalanced, or a FieldCountError if the
// line does not have exactly nine fields.
func SplitLine(line string) (Fields, error) {
	var f Fields
	tokens, ok := shell.Split(line) // strings.Fields doesn't handle quotes
	if !ok {
		return f, MalformedLineError{Line: line}
	}
	if len(tokens) != numFields {
		return f, FieldCountError{Count: len(tokens)}
	}
	copy(f[:], tokens)
	return f, nil
}
