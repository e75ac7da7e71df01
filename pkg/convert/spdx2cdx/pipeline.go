package spdx2cdx

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aquasecurity/sbomconv/internal/slogx"
	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
	"github.com/aquasecurity/sbomconv/pkg/sbomerr"
	"github.com/aquasecurity/sbomconv/pkg/spdxshape"
)

// Convert reads an SPDX 3 document (simple JSON or JSON-LD, auto-detected)
// via opener and writes its CycloneDX equivalent to mainOut, per
// spec.md §4.5. When opts.SplitVEX is set, vulnerabilities are written to
// vexOut (which must be non-nil in that case) as a standalone CycloneDX
// document referencing mainOut's components by BOM-Link instead of being
// appended to mainOut.
//
// The three passes each call opener once, from the start: Pass 1 builds the
// relationship index, Pass 2 streams components/dependencies, Pass 3
// extracts vulnerabilities/VEX. Only the index (bounded by relationship
// count) and, in JSON-LD mode, the vulnerability/VEX accumulation (bounded
// by vulnerability count) are held in memory; component and relationship
// bodies themselves are never buffered whole.
func Convert(ctx context.Context, opener Opener, mainOut, vexOut io.Writer, opts Options) (Stats, error) {
	if err := opts.setDefaults(); err != nil {
		return Stats{}, err
	}
	if opts.SplitVEX && vexOut == nil {
		return Stats{}, sbomerr.New(sbomerr.PolicyUnsupported, "spdx2cdx.Convert", fmt.Errorf("split VEX requested but no VEX writer provided"))
	}

	shape, err := detectShape(opener)
	if err != nil {
		return Stats{}, err
	}
	if shape == spdxshape.ShapeUnknown {
		slogx.Component(ctx, "spdx2cdx").Warn("input has neither elements nor @graph at its root; producing an empty CycloneDX document")
	}

	idx, err := runIndexPass(opener, shape, opts)
	if err != nil {
		return Stats{}, err
	}

	serial := opts.NewUUID().String()

	bw := bufio.NewWriter(mainOut)
	if err := writeBomHeader(bw, serial, opts); err != nil {
		return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
	}

	if err := runPass2(opener, shape, bw, idx, opts); err != nil {
		return Stats{}, err
	}

	var bomLink string
	if opts.SplitVEX {
		if _, err := bw.WriteString("\n}\n"); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
		if err := bw.Flush(); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}

		bomLink = "urn:uuid:" + serial
		vbw := bufio.NewWriter(vexOut)
		if err := writeVexHeader(vbw, serial, opts); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
		if err := runPass3(opener, shape, idx, vbw, bomLink, opts); err != nil {
			return Stats{}, err
		}
		if _, err := vbw.WriteString("\n}\n"); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
		if err := vbw.Flush(); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
	} else {
		if _, err := bw.WriteString(",\n"); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
		if err := runPass3(opener, shape, idx, bw, "", opts); err != nil {
			return Stats{}, err
		}
		if _, err := bw.WriteString("\n}\n"); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
		if err := bw.Flush(); err != nil {
			return Stats{}, sbomerr.New(sbomerr.Emit, "spdx2cdx.Convert", err)
		}
	}

	snap := opts.Progress.Snapshot()
	slogx.Component(ctx, "spdx2cdx").Info("conversion complete", "elements", snap.Elements, "relationships", snap.Relationships)
	return Stats{Elements: snap.Elements, Relationships: snap.Relationships, SerialNumber: serial}, nil
}

func detectShape(opener Opener) (spdxshape.Shape, error) {
	rc, err := opener()
	if err != nil {
		return spdxshape.ShapeUnknown, sbomerr.New(sbomerr.InputOpen, "spdx2cdx.detectShape", err)
	}
	defer rc.Close()
	return spdxshape.Detect(rc)
}

func runIndexPass(opener Opener, shape spdxshape.Shape, opts Options) (*Index, error) {
	rc, err := opener()
	if err != nil {
		return nil, sbomerr.New(sbomerr.InputOpen, "spdx2cdx.pass1", err)
	}
	defer rc.Close()
	return buildIndex(jsonstream.New(rc, "spdx2cdx.pass1"), shape, opts.Progress)
}

func runPass2(opener Opener, shape spdxshape.Shape, bw *bufio.Writer, idx *Index, opts Options) error {
	rc, err := opener()
	if err != nil {
		return sbomerr.New(sbomerr.InputOpen, "spdx2cdx.pass2", err)
	}
	defer rc.Close()
	return pass2(jsonstream.New(rc, "spdx2cdx.pass2"), shape, bw, idx, opts.PackagesOnly, opts.Progress)
}

func runPass3(opener Opener, shape spdxshape.Shape, idx *Index, bw *bufio.Writer, bomLink string, opts Options) error {
	rc, err := opener()
	if err != nil {
		return sbomerr.New(sbomerr.InputOpen, "spdx2cdx.pass3", err)
	}
	defer rc.Close()
	return pass3(jsonstream.New(rc, "spdx2cdx.pass3"), shape, idx, bw, bomLink, opts.Progress)
}

// ToolVersion is the semver embedded in the tool component's bom-ref emitted
// in metadata.tools, per spec.md §6's CDX document shape.
const ToolVersion = "0.1.0"

func writeBomHeader(bw *bufio.Writer, serial string, opts Options) error {
	_, err := fmt.Fprintf(bw, "{\n"+
		"  \"bomFormat\": \"CycloneDX\",\n"+
		"  \"specVersion\": %q,\n"+
		"  \"serialNumber\": %q,\n"+
		"  \"version\": 1,\n"+
		"  \"metadata\": {\n"+
		"    \"timestamp\": %q,\n"+
		"    \"tools\": {\"components\": [{\"type\": \"application\", \"name\": %q, \"bom-ref\": %q}]}\n"+
		"  },\n",
		opts.CDXVersion, "urn:uuid:"+serial, opts.Clock.Now().UTC().Format(time.RFC3339), opts.ToolName, opts.ToolName+"-"+ToolVersion)
	return err
}

func writeVexHeader(bw *bufio.Writer, serial string, opts Options) error {
	_, err := fmt.Fprintf(bw, "{\n"+
		"  \"bomFormat\": \"CycloneDX\",\n"+
		"  \"specVersion\": %q,\n"+
		"  \"serialNumber\": %q,\n"+
		"  \"version\": 1,\n"+
		"  \"metadata\": {\n"+
		"    \"timestamp\": %q,\n"+
		"    \"tools\": {\"components\": [{\"type\": \"application\", \"name\": %q, \"bom-ref\": %q}]}\n"+
		"  },\n",
		opts.CDXVersion, "urn:uuid:"+serial, opts.Clock.Now().UTC().Format(time.RFC3339), opts.ToolName, opts.ToolName+"-"+ToolVersion)
	return err
}
