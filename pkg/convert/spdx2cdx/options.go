// Package spdx2cdx implements the three-pass SPDX -> CycloneDX streaming
// converter (C5): Pass 1 builds a relationship index, Pass 2 streams
// components and emits dependencies from the index, Pass 3 extracts
// vulnerabilities and VEX assessments into the main document or a sibling
// split-VEX document.
package spdx2cdx

import (
	"io"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/sbomconv/pkg/convert/cdxversion"
	"github.com/aquasecurity/sbomconv/pkg/progress"
)

// Opener re-opens the logical input from the start. Each of the three
// passes calls it once. Non-seekable inputs (pipes) must be materialized to
// a scratch file by the caller first; per spec.md §9 that is a deployment
// concern, not this package's.
type Opener func() (io.ReadCloser, error)

// Options configures a Convert call. Zero value is a usable default except
// that CDXVersion defaults to cdxversion.Default via setDefaults.
type Options struct {
	// PackagesOnly, when true, skips SpdxFile/software_File elements
	// entirely rather than converting them to CDX "file" components.
	PackagesOnly bool

	// SplitVEX, when true, routes Pass 3's vulnerabilities into Convert's
	// vexOut writer instead of appending them to the main document.
	SplitVEX bool

	// CDXVersion is the specVersion string to emit; see pkg/convert/cdxversion.
	CDXVersion string

	ToolName string
	Clock    clock.Clock
	NewUUID  func() uuid.UUID
	Progress *progress.Sink
}

func (o *Options) setDefaults() error {
	if o.CDXVersion == "" {
		o.CDXVersion = cdxversion.Default
	}
	if err := cdxversion.Validate(o.CDXVersion); err != nil {
		return err
	}
	if o.ToolName == "" {
		o.ToolName = "sbomconv"
	}
	if o.Clock == nil {
		o.Clock = clock.RealClock{}
	}
	if o.NewUUID == nil {
		o.NewUUID = uuid.New
	}
	if o.Progress == nil {
		o.Progress = progress.New(0, nil)
	}
	return nil
}

// Stats reports the final progress counters plus the generated CDX
// serialNumber, so callers that split VEX into a second document can log or
// verify the two documents share it.
type Stats struct {
	Elements      int64
	Relationships int64
	SerialNumber  string
}
