// Package jsonstream is the pull-based JSON reader shared by both
// converters. It exposes map-key and array-element callbacks on top of
// jsoniter's low-allocation iterator and guarantees that skipped branches
// are never materialized.
package jsonstream

import (
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/aquasecurity/sbomconv/pkg/sbomerr"
)

// Reader is a single-pass pull parser over one JSON document. It is not
// safe for concurrent use, and it is not reusable across passes: callers
// that need a second pass over the same logical input open a fresh
// io.Reader and construct a new Reader (see Opener in pkg/convert/spdx2cdx).
type Reader struct {
	it  *jsoniter.Iterator
	cr  *countingReader
	op  string
}

// New wraps src in a Reader. op names the calling operation for error
// messages (e.g. "cdx2spdx.decode").
func New(src io.Reader, op string) *Reader {
	cr := &countingReader{r: src}
	it := jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, cr, 64*1024)
	return &Reader{it: it, cr: cr, op: op}
}

// Offset returns the number of bytes consumed from the underlying source so
// far, used to annotate decode errors with a byte position.
func (r *Reader) Offset() int64 { return r.cr.n }

func (r *Reader) err(path string) *sbomerr.Error {
	return sbomerr.Decodef(r.op, r.Offset(), path, r.it.Error)
}

// ExpectObject checks that the root value is an object by peeking at its
// first token; the opening '{' itself is consumed by the following Keys call.
// It returns false (with no error) on a clean EOF, and a Decode error for
// anything else.
func (r *Reader) ExpectObject() (bool, error) {
	t := r.it.WhatIsNext()
	if t != jsoniter.ObjectValue {
		if r.it.Error == io.EOF {
			return false, nil
		}
		return false, r.err("$")
	}
	return true, nil
}

// Keys iterates the keys of the current object, invoking fn with each key.
// fn must consume or skip the value and report whether it did so: returning
// consumed=false makes Keys skip the value for you (without allocating the
// subtree); returning a non-nil err aborts iteration immediately and Keys
// returns that error (wrapped with position info if it isn't already a
// *sbomerr.Error).
func (r *Reader) Keys(fn func(key string) (consumed bool, err error)) error {
	for key := r.it.ReadObject(); key != ""; key = r.it.ReadObject() {
		consumed, err := fn(key)
		if err != nil {
			return r.wrap(key, err)
		}
		if !consumed {
			r.it.Skip()
		}
		if r.it.Error != nil && r.it.Error != io.EOF {
			return r.err(key)
		}
	}
	if r.it.Error != nil && r.it.Error != io.EOF {
		return r.err("$")
	}
	return nil
}

// Array iterates the elements of the current array value, invoking fn with
// the zero-based index. fn must consume the element's value (typically via
// DecodeInto) and report whether it did so, the same contract as Keys.
func (r *Reader) Array(fn func(idx int) (consumed bool, err error)) error {
	idx := 0
	for r.it.ReadArray() {
		consumed, err := fn(idx)
		if err != nil {
			return r.wrap(pathIndex(idx), err)
		}
		if !consumed {
			r.it.Skip()
		}
		if r.it.Error != nil && r.it.Error != io.EOF {
			return r.err(pathIndex(idx))
		}
		idx++
	}
	if r.it.Error != nil && r.it.Error != io.EOF {
		return r.err("$")
	}
	return nil
}

// wrap annotates a caller-returned error with a path when it isn't already a
// *sbomerr.Error (which carries its own, more precise location).
func (r *Reader) wrap(path string, err error) error {
	if _, ok := err.(*sbomerr.Error); ok {
		return err
	}
	return sbomerr.Decodef(r.op, r.Offset(), path, err)
}

// DecodeInto decodes the current value (the one just yielded by Keys or
// Array) into v. Bounded to the current value's subtree.
func (r *Reader) DecodeInto(v any) error {
	r.it.ReadVal(v)
	if r.it.Error != nil && r.it.Error != io.EOF {
		return r.err("$")
	}
	return nil
}

// DecodeString reads the current value as a string, tolerating the value
// being absent (empty string is returned) but not a non-string primitive.
func (r *Reader) DecodeString() (string, error) {
	s := r.it.ReadString()
	if r.it.Error != nil && r.it.Error != io.EOF {
		return "", r.err("$")
	}
	return s, nil
}

// Skip discards the current value without allocating its subtree.
func (r *Reader) Skip() {
	r.it.Skip()
}

// WhatIsNext exposes the upcoming value's kind, used by callers that must
// branch on shape (object vs array vs scalar) before deciding how to decode.
func (r *Reader) WhatIsNext() jsoniter.ValueType {
	return r.it.WhatIsNext()
}

func pathIndex(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// countingReader tracks how many bytes have been pulled from the source,
// so decode errors can cite a byte offset without jsoniter exposing one.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
