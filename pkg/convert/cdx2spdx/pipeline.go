// Package cdx2spdx implements the single-pass CycloneDX -> SPDX streaming
// converter (C4). Relationships cannot be written inline because they must
// appear after "elements" in the output, so they (and, to keep component
// output ordered ahead of vulnerabilities regardless of input order,
// vulnerability elements too) are deferred to NDJSON side files and spliced
// in at finalize time.
package cdx2spdx

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/aquasecurity/sbomconv/internal/slogx"
	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
	"github.com/aquasecurity/sbomconv/pkg/progress"
	"github.com/aquasecurity/sbomconv/pkg/sbomerr"
)

const (
	SPDXVersion       = "SPDX-3.0"
	DataLicense       = "CC0-1.0"
	SPDXID            = "SPDXRef-DOCUMENT"
	DocumentName      = "Converted SBOM"
	DefaultToolName   = "sbomconv"
)

// Options configures a Convert call. Zero value is a usable default.
type Options struct {
	// SideFileDir is the directory the relationship and deferred-vulnerability
	// scratch files are created in. Empty means os.TempDir().
	SideFileDir string
	ToolName    string
	Clock       clock.Clock
	NewUUID     func() uuid.UUID
	Progress    *progress.Sink
}

func (o *Options) setDefaults() {
	if o.ToolName == "" {
		o.ToolName = DefaultToolName
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
}

// Stats reports the final progress counters for a completed conversion.
type Stats struct {
	Elements      int64
	Relationships int64
}

// Convert reads a CycloneDX JSON document from r and writes its SPDX 3
// simple-JSON equivalent to w, per spec.md §4.4.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	opts.setDefaults()

	relFile, err := os.CreateTemp(opts.SideFileDir, "sbomconv-rel-*.ndjson")
	if err != nil {
		return Stats{}, sbomerr.New(sbomerr.SideFile, "cdx2spdx.Convert", err)
	}
	defer os.Remove(relFile.Name())
	defer relFile.Close()

	vulnFile, err := os.CreateTemp(opts.SideFileDir, "sbomconv-vulnelem-*.ndjson")
	if err != nil {
		return Stats{}, sbomerr.New(sbomerr.SideFile, "cdx2spdx.Convert", err)
	}
	defer os.Remove(vulnFile.Name())
	defer vulnFile.Close()

	bw := bufio.NewWriter(w)

	stats, err := convert(ctx, r, bw, relFile, vulnFile, opts)
	if err != nil {
		deletePartial(w)
		return stats, err
	}

	if err := bw.Flush(); err != nil {
		deletePartial(w)
		return stats, sbomerr.New(sbomerr.Emit, "cdx2spdx.Convert", err)
	}

	slogx.Component(ctx, "cdx2spdx").Info("conversion complete", "elements", stats.Elements, "relationships", stats.Relationships)
	return stats, nil
}

func deletePartial(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok {
		return
	}
	name := f.Name()
	_ = f.Truncate(0)
	_ = os.Remove(name)
}

func convert(ctx context.Context, r io.Reader, bw *bufio.Writer, relFile, vulnFile *os.File, opts Options) (Stats, error) {
	if err := writeHeader(bw, opts); err != nil {
		return Stats{}, sbomerr.New(sbomerr.Emit, "cdx2spdx.writeHeader", err)
	}

	relWriter := bufio.NewWriter(relFile)
	vulnWriter := bufio.NewWriter(vulnFile)

	anyElement := false
	visitor := &cdxVisitor{
		bw:         bw,
		relWriter:  relWriter,
		vulnWriter: vulnWriter,
		anyElement: &anyElement,
		progress:   opts.Progress,
	}

	jr := jsonstream.New(r, "cdx2spdx.decode")
	ok, err := jr.ExpectObject()
	if err != nil {
		return Stats{}, err
	}
	if ok {
		if err := jr.Keys(visitor.dispatch(jr)); err != nil {
			return Stats{}, err
		}
	}

	if err := relWriter.Flush(); err != nil {
		return Stats{}, sbomerr.New(sbomerr.SideFile, "cdx2spdx.convert", err)
	}
	if err := vulnWriter.Flush(); err != nil {
		return Stats{}, sbomerr.New(sbomerr.SideFile, "cdx2spdx.convert", err)
	}

	if err := spliceVulnElements(bw, vulnFile, &anyElement); err != nil {
		return Stats{}, err
	}
	if _, err := bw.WriteString("\n  ],\n"); err != nil {
		return Stats{}, sbomerr.New(sbomerr.Emit, "cdx2spdx.convert", err)
	}

	if err := spliceRelationships(bw, relFile); err != nil {
		return Stats{}, err
	}

	snap := opts.Progress.Snapshot()
	return Stats{Elements: snap.Elements, Relationships: snap.Relationships}, nil
}

func writeHeader(bw *bufio.Writer, opts Options) error {
	created := opts.Clock.Now().UTC().Format(time.RFC3339)
	ns := "urn:uuid:" + opts.NewUUID().String()

	_, err := fmt.Fprintf(bw, "{\n"+
		"  \"spdxVersion\": %q,\n"+
		"  \"dataLicense\": %q,\n"+
		"  \"spdxId\": %q,\n"+
		"  \"name\": %q,\n"+
		"  \"documentNamespace\": %q,\n"+
		"  \"creationInfo\": {\n"+
		"    \"created\": %q,\n"+
		"    \"creators\": [%q]\n"+
		"  },\n"+
		"  \"elements\": [\n",
		SPDXVersion, DataLicense, SPDXID, DocumentName, ns, created, "Tool: "+opts.ToolName)
	return err
}

// cdxVisitor holds the mutable state threaded through the root-object
// dispatch. It writes components directly to the main output and defers
// vulnerability elements and all relationships to side files.
type cdxVisitor struct {
	bw         *bufio.Writer
	relWriter  *bufio.Writer
	vulnWriter *bufio.Writer
	anyElement *bool
	progress   *progress.Sink
}

func (v *cdxVisitor) dispatch(jr *jsonstream.Reader) func(key string) (bool, error) {
	return func(key string) (bool, error) {
		switch key {
		case "components":
			return true, v.handleComponents(jr)
		case "dependencies":
			return true, v.handleDependencies(jr)
		case "vulnerabilities":
			return true, v.handleVulnerabilities(jr)
		default:
			return false, nil // unknown key: let Keys skip it
		}
	}
}

func (v *cdxVisitor) handleComponents(jr *jsonstream.Reader) error {
	return jr.Array(func(idx int) (bool, error) {
		var c model.Component
		if err := jr.DecodeInto(&c); err != nil {
			return true, err
		}
		elem := adapter.ComponentToElement(c)
		if err := v.writeElement(elem); err != nil {
			return true, err
		}
		v.progress.IncElement()
		return true, nil
	})
}

func (v *cdxVisitor) handleDependencies(jr *jsonstream.Reader) error {
	return jr.Array(func(idx int) (bool, error) {
		var d model.Dependency
		if err := jr.DecodeInto(&d); err != nil {
			return true, err
		}
		from := adapter.BomRefToSpdxID(d.Ref)
		for _, target := range d.DependsOn {
			rel := model.Relationship{
				From:             from,
				RelationshipType: model.RelDependsOnSimple,
				To:               adapter.BomRefToSpdxID(target),
			}
			if err := v.writeRelationship(rel); err != nil {
				return true, err
			}
			v.progress.IncRelationship()
		}
		return true, nil
	})
}

func (v *cdxVisitor) handleVulnerabilities(jr *jsonstream.Reader) error {
	return jr.Array(func(idx int) (bool, error) {
		var vuln model.Vulnerability
		if err := jr.DecodeInto(&vuln); err != nil {
			return true, err
		}
		elem := adapter.VulnerabilityToElement(vuln)
		if err := v.writeVulnElement(elem); err != nil {
			return true, err
		}
		v.progress.IncElement()

		for _, a := range vuln.Affects {
			rel := model.Relationship{
				From:             elem.SpdxID,
				RelationshipType: model.RelAffects,
				To:               adapter.BomRefToSpdxID(a.Ref),
			}
			if err := v.writeRelationship(rel); err != nil {
				return true, err
			}
			v.progress.IncRelationship()
		}
		return true, nil
	})
}

func (v *cdxVisitor) writeElement(e model.Element) error {
	if *v.anyElement {
		if _, err := v.bw.WriteString(",\n"); err != nil {
			return sbomerr.New(sbomerr.Emit, "cdx2spdx.writeElement", err)
		}
	}
	*v.anyElement = true
	if _, err := v.bw.WriteString("    "); err != nil {
		return sbomerr.New(sbomerr.Emit, "cdx2spdx.writeElement", err)
	}
	if err := json.NewEncoder(v.bw).Encode(model.ElementWireFrom(e)); err != nil {
		return sbomerr.New(sbomerr.Emit, "cdx2spdx.writeElement", err)
	}
	return nil
}

func (v *cdxVisitor) writeVulnElement(e model.Element) error {
	if err := json.NewEncoder(v.vulnWriter).Encode(model.ElementWireFrom(e)); err != nil {
		return sbomerr.New(sbomerr.SideFile, "cdx2spdx.writeVulnElement", err)
	}
	return nil
}

func (v *cdxVisitor) writeRelationship(r model.Relationship) error {
	if err := json.NewEncoder(v.relWriter).Encode(model.RelationshipWireFrom(r)); err != nil {
		return sbomerr.New(sbomerr.SideFile, "cdx2spdx.writeRelationship", err)
	}
	return nil
}

// spliceVulnElements appends the deferred vulnerability elements after the
// directly-streamed components, continuing the comma bookkeeping started by
// writeElement.
func spliceVulnElements(bw *bufio.Writer, vulnFile *os.File, anyElement *bool) error {
	if _, err := vulnFile.Seek(0, io.SeekStart); err != nil {
		return sbomerr.New(sbomerr.SideFile, "cdx2spdx.spliceVulnElements", err)
	}
	return spliceLines(bw, vulnFile, anyElement, "cdx2spdx.spliceVulnElements")
}

// spliceRelationships opens the "relationships" array, replays the side
// file's NDJSON lines comma-joined, and closes the array and the document.
func spliceRelationships(bw *bufio.Writer, relFile *os.File) error {
	if _, err := bw.WriteString("  \"relationships\": [\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "cdx2spdx.spliceRelationships", err)
	}
	if _, err := relFile.Seek(0, io.SeekStart); err != nil {
		return sbomerr.New(sbomerr.SideFile, "cdx2spdx.spliceRelationships", err)
	}
	first := true
	if err := spliceLines(bw, relFile, &first, "cdx2spdx.spliceRelationships"); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n  ]\n}\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "cdx2spdx.spliceRelationships", err)
	}
	return nil
}

func spliceLines(bw *bufio.Writer, f *os.File, first *bool, op string) error {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !*first {
			if _, err := bw.WriteString(",\n"); err != nil {
				return sbomerr.New(sbomerr.Emit, op, err)
			}
		}
		*first = false
		if _, err := bw.WriteString("    "); err != nil {
			return sbomerr.New(sbomerr.Emit, op, err)
		}
		if _, err := bw.Write(line); err != nil {
			return sbomerr.New(sbomerr.Emit, op, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return sbomerr.New(sbomerr.SideFile, op, err)
	}
	return nil
}
