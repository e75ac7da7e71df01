package adapter

import "github.com/aquasecurity/sbomconv/pkg/model"

// VulnElementID builds the SPDXRef used for a vulnerability element, per
// spec.md §4.4: "SPDXRef-Vulnerability-{id}".
func VulnElementID(cveID string) string {
	return "SPDXRef-Vulnerability-" + cveID
}

// VulnerabilityToElement converts a CDX vulnerability into its SPDX element
// fields. The element's relationships (one AFFECTS per entry in
// vulnerability.affects) are the caller's responsibility to emit, since they
// live in a different output array than elements (C4).
func VulnerabilityToElement(v model.Vulnerability) model.Element {
	return model.Element{
		SpdxID:  VulnElementID(v.ID),
		Type:    model.TypeSpdxVulnerability,
		Name:    v.ID,
		Summary: v.Description,
	}
}

// CDXVulnerabilityFromVEX builds a CDX vulnerability from an extracted CVE
// id, its resolved analysis state, and the list of affected bom-refs
// (already mapped through SpdxIDToBomRef). When bomLink is non-empty, each
// ref is prefixed here as a BOM-Link per spec.md §4.5 Pass 3:
// "{bomLink}#{bom-ref}".
func CDXVulnerabilityFromVEX(cveID, analysisState string, affectedRefs []string, bomLink string) model.Vulnerability {
	v := model.Vulnerability{
		ID: cveID,
	}
	if analysisState != "" {
		v.Analysis = &model.VulnAnalysis{State: analysisState}
	}
	for _, ref := range affectedRefs {
		r := ref
		if bomLink != "" {
			r = bomLink + "#" + ref
		}
		v.Affects = append(v.Affects, model.VulnAffects{Ref: r})
	}
	return v
}
