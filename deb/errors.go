package deb

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of them
// with errors.Is.
var (
	// ErrConfiguration reports a missing or malformed configuration value.
	ErrConfiguration = errors.New("configuration error")
	// ErrIO reports a failure reading an input file or writing an output.
	ErrIO = errors.New("i/o error")
	// ErrEncoding reports an entry that cannot be represented in the archive format.
	ErrEncoding = errors.New("encoding error")
)

// Error describes a failed build step. The build is all-or-nothing: once an
// Error is returned the archive must be discarded.
type Error struct {
	// Kind is one of ErrConfiguration, ErrIO or ErrEncoding.
	Kind error
	// Op names the failing operation, e.g. "read asset".
	Op string
	// Path is the file, archive path or configuration field involved.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("deb: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("deb: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func configError(op, field string, err error) error {
	return &Error{Kind: ErrConfiguration, Op: op, Path: field, Err: err}
}

func ioError(op, path string, err error) error {
	return &Error{Kind: ErrIO, Op: op, Path: path, Err: err}
}

func encodingError(op, path string, err error) error {
	return &Error{Kind: ErrEncoding, Op: op, Path: path, Err: err}
}
