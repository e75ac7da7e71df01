// Package spdxshape detects whether an SPDX 3 document uses the simple JSON
// shape (top-level "elements"/"relationships" arrays) or the JSON-LD shape
// (top-level "@context"/"@graph") emitted by tooling such as
// Yocto/OpenEmbedded, and routes callers to the right extractor.
package spdxshape

import (
	"io"

	"github.com/aquasecurity/sbomconv/internal/slogx"
	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
)

type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeSimple
	ShapeJSONLD
)

func (s Shape) String() string {
	switch s {
	case ShapeSimple:
		return "simple"
	case ShapeJSONLD:
		return "json-ld"
	default:
		return "unknown"
	}
}

var log = slogx.New("spdxshape")

// Detect peeks the root object's keys on a fresh reader over the document
// and decides the shape. It does not consume any array contents; every key's
// value is skipped regardless of kind, since only the key's presence
// matters here. Callers open a second, independent reader over the same
// input for the real per-key work (the pipelines already re-open per pass).
func Detect(r io.Reader) (Shape, error) {
	jr := jsonstream.New(r, "spdxshape.detect")

	ok, err := jr.ExpectObject()
	if err != nil {
		return ShapeUnknown, err
	}
	if !ok {
		return ShapeUnknown, nil
	}

	var hasElements, hasGraph bool
	err = jr.Keys(func(key string) (bool, error) {
		switch key {
		case "elements":
			hasElements = true
		case "@graph":
			hasGraph = true
		}
		return false, nil // always skip; we only care about key presence
	})
	if err != nil {
		return ShapeUnknown, err
	}

	switch {
	case hasElements:
		return ShapeSimple, nil
	case hasGraph:
		return ShapeJSONLD, nil
	default:
		log.Warn("neither elements nor @graph found at document root; treating as empty input")
		return ShapeUnknown, nil
	}
}
