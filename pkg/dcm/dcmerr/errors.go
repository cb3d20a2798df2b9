// Package dcmerr provides the error taxonomy of the DICOM decoder
package dcmerr

import (
	"errors"
	"fmt"
)

// Error classes. Every decode failure wraps exactly one of these.
var (
	ErrCorruptImage   = errors.New("dcm: corrupt image")
	ErrUnexpectedEOF  = errors.New("dcm: unexpected end of file")
	ErrResourceLimit  = errors.New("dcm: resource limit exceeded")
	ErrUnsupported    = errors.New("dcm: unsupported feature")
	ErrCanceled       = errors.New("dcm: decode canceled")
	ErrExternalDecode = errors.New("dcm: external decoder failed")
)

// Corruptf wraps ErrCorruptImage with a formatted reason
func Corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptImage, fmt.Sprintf(format, args...))
}

// Unsupportedf wraps ErrUnsupported with a formatted reason
func Unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}

// Limitf wraps ErrResourceLimit with a formatted reason
func Limitf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrResourceLimit, fmt.Sprintf(format, args...))
}

// DecodeError is the single error returned by a failed decode. It names the
// file and the byte offset where parsing stopped.
type DecodeError struct {
	File   string
	Offset int64
	Op     string
	Err    error
}

func (e *DecodeError) Error() string {
	file := e.File
	if file == "" {
		file = "<stream>"
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: offset %d: %v", file, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: offset %d: %s: %v", file, e.Offset, e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new decode error. An existing DecodeError is
// returned unchanged so the innermost offset wins.
func NewDecodeError(file string, offset int64, op string, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{File: file, Offset: offset, Op: op, Err: err}
}

// Class returns the sentinel class of err, or nil if err carries none
func Class(err error) error {
	for _, c := range []error{ErrCorruptImage, ErrUnexpectedEOF, ErrResourceLimit, ErrUnsupported, ErrCanceled, ErrExternalDecode} {
		if errors.Is(err, c) {
			return c
		}
	}
	return nil
}
