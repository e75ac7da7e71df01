package adapter

import (
	"github.com/aquasecurity/sbomconv/internal/slogx"
	"github.com/aquasecurity/sbomconv/pkg/model"
)

// UnknownName is emitted for a component/element whose name was missing,
// per spec.md §7 ("A component with a missing required name is emitted as
// Unknown").
const UnknownName = "Unknown"

// ComponentToElement converts a CDX component into the SPDX element fields
// needed to emit a SpdxPackage/SpdxFile record (C4, §4.1).
func ComponentToElement(c model.Component) model.Element {
	elemType := model.TypeSpdxPackage
	if c.Type == "file" {
		elemType = model.TypeSpdxFile
	}

	name := c.Name
	if name == "" {
		name = UnknownName
	}

	e := model.Element{
		SpdxID:              BomRefToSpdxID(c.BOMRef),
		Type:                elemType,
		Name:                name,
		VersionInfo:         c.Version,
		Summary:             c.Description,
		PrimaryPurpose:      ScopeToPurpose(c.Scope),
		ExternalIdentifiers: ExternalIdentifiersForComponent(c.CPE, c.PURL),
	}

	if len(c.Licenses) > 0 {
		e.LicenseConcluded = licenseConcludedFromChoice(c.Licenses[0])
	}

	for _, h := range c.Hashes {
		e.VerifiedUsing = append(e.VerifiedUsing, model.VerifiedUsing{
			Algorithm: NormalizeHashAlgToSPDX(h.Alg),
			HashValue: h.Content,
		})
	}

	return e
}

// licenseConcludedFromChoice extracts a licenseConcluded value from a CDX
// licenses[0] entry. A bare expression wins when present; otherwise an
// SPDX-id-only license.id is itself a valid license expression and is used
// as-is, falling back to the free-text license.name as a last resort rather
// than silently dropping the license entirely.
func licenseConcludedFromChoice(lc model.LicenseChoice) string {
	if lc.Expression != "" {
		return lc.Expression
	}
	if lc.License == nil {
		return ""
	}
	if lc.License.ID != "" {
		return lc.License.ID
	}
	return lc.License.Name
}

// ElementToComponent converts an SPDX element into a CDX component. packagesOnly
// tells the caller (not this function) whether to skip SpdxFile elements;
// ElementToComponent always converts what it's given.
func ElementToComponent(e model.Element) model.Component {
	componentType := "library"
	if e.Type == model.TypeSpdxFile || e.Type == model.TypeSoftwareFile {
		componentType = "file"
	}

	name := e.Name
	if name == "" {
		name = UnknownName
	}

	c := model.Component{
		BOMRef:  SpdxIDToBomRef(e.SpdxID),
		Type:    componentType,
		Name:    name,
		Version: e.VersionInfo,
		Scope:   PurposeToScope(e.PrimaryPurpose),
		CPE:     CPEFromExternalIdentifiers(e.ExternalIdentifiers),
		PURL:    PURLFromElement(e),
	}

	if e.LicenseConcluded != "" {
		c.Licenses = []model.LicenseChoice{{Expression: e.LicenseConcluded}}
	}

	for _, v := range e.VerifiedUsing {
		alg := v.Algorithm
		if alg == "" {
			// a hash with no algorithm is dropped with a warning, per spec.md §7
			slogx.New("adapter").Warn("dropping hash with no algorithm", "spdxId", e.SpdxID, "hashValue", v.HashValue)
			continue
		}
		c.Hashes = append(c.Hashes, model.Hash{
			Alg:     NormalizeHashAlgToCDX(alg),
			Content: v.HashValue,
		})
	}

	return c
}
