package spdx2cdx

import (
	"bufio"
	"encoding/json"

	"github.com/aquasecurity/sbomconv/internal/slogx"
	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
	"github.com/aquasecurity/sbomconv/pkg/progress"
	"github.com/aquasecurity/sbomconv/pkg/sbomerr"
	"github.com/aquasecurity/sbomconv/pkg/spdxshape"
)

var log3 = slogx.New("spdx2cdx.pass3")

// vexAssessment is one accumulated JSON-LD VEX relationship, kept until the
// whole @graph has been scanned since a vulnerability's VEX relationships
// and its own element can appear in either order.
type vexAssessment struct {
	state   string
	targets []string
}

// pass3 streams the input a third time (simple mode) or accumulates (JSON-LD
// mode) to extract vulnerabilities and their VEX-derived analysis state,
// writing CDX vulnerability records to bw. bomLink, when non-empty, prefixes
// every affected ref as "{bomLink}#{bom-ref}" per spec.md §4.5, used when
// the vulnerabilities are split into a sibling document.
func pass3(r *jsonstream.Reader, shape spdxshape.Shape, idx *Index, bw *bufio.Writer, bomLink string, prog *progress.Sink) error {
	if _, err := bw.WriteString("  \"vulnerabilities\": [\n"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.pass3", err)
	}

	ok, err := r.ExpectObject()
	if err != nil {
		return err
	}

	any := false
	if ok {
		switch shape {
		case spdxshape.ShapeSimple:
			err = r.Keys(func(key string) (bool, error) {
				if key != "elements" {
					return false, nil
				}
				return true, streamSimpleVulnerabilities(r, idx, bw, &any, bomLink, prog)
			})
		case spdxshape.ShapeJSONLD:
			err = r.Keys(func(key string) (bool, error) {
				if key != "@graph" {
					return false, nil
				}
				return true, streamGraphVulnerabilities(r, bw, &any, bomLink, prog)
			})
		}
	}
	if err != nil {
		return err
	}

	if _, err := bw.WriteString("\n  ]"); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.pass3", err)
	}
	return nil
}

func streamSimpleVulnerabilities(r *jsonstream.Reader, idx *Index, bw *bufio.Writer, any *bool, bomLink string, prog *progress.Sink) error {
	return r.Array(func(i int) (bool, error) {
		var w model.ElementWire
		if err := r.DecodeInto(&w); err != nil {
			return true, err
		}
		if w.Type != model.TypeSpdxVulnerability {
			return true, nil
		}
		e := w.ToElement()

		cveID, ok := adapter.ExtractCVE(e)
		if !ok {
			log3.Warn("vulnerability element has no extractable CVE id, skipping", "spdxId", e.SpdxID)
			return true, nil
		}

		var refs []string
		for _, rel := range idx.From(e.SpdxID) {
			if rel.RelationshipType == model.RelAffects {
				refs = append(refs, adapter.SpdxIDToBomRef(rel.To))
			}
		}

		vuln := adapter.CDXVulnerabilityFromVEX(cveID, "", refs, bomLink)
		vuln.Description = e.Summary
		if err := writeVulnerability(bw, vuln, any); err != nil {
			return true, err
		}
		prog.IncElement()
		return true, nil
	})
}

func streamGraphVulnerabilities(r *jsonstream.Reader, bw *bufio.Writer, any *bool, bomLink string, prog *progress.Sink) error {
	vulns := make(map[string]model.Element)
	var order []string
	vex := make(map[string][]vexAssessment)

	err := r.Array(func(i int) (bool, error) {
		var g graphEntryWire
		if err := r.DecodeInto(&g); err != nil {
			return true, err
		}

		switch {
		case isVulnerabilityType(g.Type):
			if _, seen := vulns[g.SpdxID]; !seen {
				order = append(order, g.SpdxID)
			}
			vulns[g.SpdxID] = g.toElement()

		case isVexRelationshipType(g.Type):
			var targets []string
			if len(g.To) > 0 {
				if err := json.Unmarshal(g.To, &targets); err != nil {
					return true, err
				}
			}
			vex[g.From] = append(vex[g.From], vexAssessment{
				state:   adapter.VEXRelationshipToAnalysisState(g.Type),
				targets: targets,
			})
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	for _, spdxID := range order {
		e := vulns[spdxID]
		cveID, ok := adapter.ExtractCVE(e)
		if !ok {
			log3.Warn("vulnerability element has no extractable CVE id, skipping", "spdxId", e.SpdxID)
			continue
		}

		var state string
		var refs []string
		for _, a := range vex[spdxID] {
			if state == "" {
				state = a.state // first assessment wins when states disagree, per spec.md's tie-break
			}
			for _, t := range a.targets {
				refs = append(refs, adapter.SpdxIDToBomRef(t))
			}
		}

		vuln := adapter.CDXVulnerabilityFromVEX(cveID, state, refs, bomLink)
		vuln.Description = e.Summary
		if err := writeVulnerability(bw, vuln, any); err != nil {
			return err
		}
		prog.IncElement()
	}
	return nil
}

func writeVulnerability(bw *bufio.Writer, v model.Vulnerability, any *bool) error {
	if *any {
		if _, err := bw.WriteString(",\n"); err != nil {
			return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeVulnerability", err)
		}
	}
	*any = true
	if _, err := bw.WriteString("    "); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeVulnerability", err)
	}
	if err := json.NewEncoder(bw).Encode(v); err != nil {
		return sbomerr.New(sbomerr.Emit, "spdx2cdx.writeVulnerability", err)
	}
	return nil
}
