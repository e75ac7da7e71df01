// Package sbomerr defines the error taxonomy surfaced by the converter core
// to its callers (the CLI frontend, test harnesses, etc).
package sbomerr

import "fmt"

// Kind classifies a failure so callers can decide how to render or retry it.
type Kind string

const (
	// InputOpen means the input stream could not be opened or re-opened for a pass.
	InputOpen Kind = "input_open"
	// OutputOpen means the output stream could not be opened.
	OutputOpen Kind = "output_open"
	// Decode means the input was not valid JSON, or a required primitive had the wrong kind.
	Decode Kind = "decode"
	// Shape means the input parsed but matched neither CDX nor a known SPDX shape.
	Shape Kind = "shape"
	// SideFile means the relationship scratch file could not be created, written, or read.
	SideFile Kind = "side_file"
	// Emit means the output stream failed mid-write.
	Emit Kind = "emit"
	// PolicyUnsupported means the caller requested an unsupported version or format pair.
	PolicyUnsupported Kind = "policy_unsupported"
)

// Error is the error type returned by every exported conversion entry point.
type Error struct {
	Kind Kind
	Op   string // the operation in progress, e.g. "cdx2spdx.pass1"

	// ByteOffset is set when the failure occurred while decoding a specific
	// point in the input stream. -1 means unknown/not applicable.
	ByteOffset int64

	// Path is an optional best-effort JSON-pointer-like location, e.g. "components[3].hashes[0]".
	Path string

	Err error
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, ByteOffset: -1, Err: err}
}

func Decodef(op string, offset int64, path string, err error) *Error {
	return &Error{Kind: Decode, Op: op, ByteOffset: offset, Path: path, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.ByteOffset >= 0 && e.Path != "":
		return fmt.Sprintf("%s: %s (at byte %d, %s): %v", e.Op, e.Kind, e.ByteOffset, e.Path, e.Err)
	case e.ByteOffset >= 0:
		return fmt.Sprintf("%s: %s (at byte %d): %v", e.Op, e.Kind, e.ByteOffset, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &sbomerr.Error{Kind: sbomerr.Decode}) matches any Decode
// error regardless of Op, position or cause.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
