// Package errors defines the failure taxonomy of the ingestion pipeline.
//
// Measurement-file failures are recoverable: every kind degrades to a
// missing value at the call site, and the kind only exists so logs stay
// diagnosable. The single fatal condition is ErrMetadataLoad.
package errors

import (
	"errors"
	"fmt"
)

// ReadKind distinguishes the ways a measurement-file read can fail.
type ReadKind string

const (
	KindNotFound      ReadKind = "not_found"
	KindUnreadable    ReadKind = "unreadable"
	KindMissingColumn ReadKind = "missing_column"
	KindParseError    ReadKind = "parse_error"
)

// ReadError describes a recoverable measurement-file failure.
type ReadError struct {
	Kind ReadKind
	Path string
	Err  error
}

// NewRead creates a ReadError. err may be nil when the kind alone carries
// the whole story (a file that simply is not there).
func NewRead(kind ReadKind, path string, err error) *ReadError {
	return &ReadError{Kind: kind, Path: path, Err: err}
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Unwrap exposes the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// AsRead extracts a ReadError from an error chain.
func AsRead(err error) (*ReadError, bool) {
	var re *ReadError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// ErrMetadataLoad marks the one fatal condition of the pipeline: the
// primary metadata table could not be loaded at all. There is no
// partial-metadata mode.
var ErrMetadataLoad = errors.New("metadata table could not be loaded")
