package spdx2cdx

import (
	"encoding/json"

	"github.com/aquasecurity/sbomconv/pkg/model"
)

// graphEntryWire is the JSON-LD "@graph" entry shape. A single struct covers
// packages, files, vulnerabilities, relationships and VEX assessment
// relationships: jsoniter decodes whichever fields are present and leaves
// the rest zero, the same one-struct-many-shapes approach
// pkg/model.ElementWire takes for the simple shape. "to" is left as raw
// JSON because JSON-LD always spells it as an array while the simple
// shape's "relatedSpdxElement" is a single string; index.go and pass3.go
// unmarshal it themselves once they know they're looking at a relationship
// entry.
type graphEntryWire struct {
	SpdxID string `json:"spdxId"`
	Type   string `json:"type"`

	// Package/file fields (software_* JSON-LD spellings).
	Name                string                     `json:"name,omitempty"`
	PackageVersion      string                     `json:"software_packageVersion,omitempty"`
	Description         string                     `json:"description,omitempty"`
	Summary             string                     `json:"summary,omitempty"`
	PrimaryPurpose      string                     `json:"software_primaryPurpose,omitempty"`
	ExternalIdentifier  []model.ExternalIdentifier `json:"externalIdentifier,omitempty"`
	VerifiedUsing       []model.VerifiedUsing      `json:"verifiedUsing,omitempty"`

	// Relationship fields (Relationship / LifecycleScopedRelationship /
	// security_Vex*VulnAssessmentRelationship). "to" is kept raw because its
	// shape (a JSON array of element ids) only matters once the caller
	// already knows the entry is a relationship.
	From             string          `json:"from,omitempty"`
	To               json.RawMessage `json:"to,omitempty"`
	RelationshipType string          `json:"relationshipType,omitempty"`
}

// toElement converts a package/file/vulnerability graph entry into the
// internal Element shape, unifying it with the simple-shape field names.
func (g graphEntryWire) toElement() model.Element {
	name := g.Name
	version := g.PackageVersion
	summary := g.Description
	if summary == "" {
		summary = g.Summary
	}
	return model.Element{
		SpdxID:              g.SpdxID,
		Type:                g.Type,
		Name:                name,
		VersionInfo:         version,
		Summary:             summary,
		ExternalIdentifiers: g.ExternalIdentifier,
		VerifiedUsing:       g.VerifiedUsing,
		PrimaryPurpose:      g.PrimaryPurpose,
	}
}

// isComponentType reports whether t is a convertible component kind
// in either shape's spelling.
func isComponentType(t string) bool {
	switch t {
	case model.TypeSpdxPackage, model.TypeSpdxFile, model.TypeSoftwarePackage, model.TypeSoftwareFile:
		return true
	default:
		return false
	}
}

func isFileType(t string) bool {
	return t == model.TypeSpdxFile || t == model.TypeSoftwareFile
}

func isVulnerabilityType(t string) bool {
	return t == model.TypeSpdxVulnerability || t == model.TypeSecurityVuln
}

func isVexRelationshipType(t string) bool {
	switch t {
	case model.VexNotAffected, model.VexFixed, model.VexAffected, model.VexUnderInvestigation:
		return true
	default:
		return false
	}
}
