package model

// ElementWire is the simple-JSON wire shape for an SPDX element: the field
// spellings spec.md §3 calls "simple form". JSON-LD uses different field
// names for several of these (handled by the JSON-LD decode path in
// pkg/convert/spdx2cdx), but both shapes converge on an Element once
// decoded.
type ElementWire struct {
	SpdxID              string               `json:"spdxId"`
	Type                string               `json:"type"`
	Name                string               `json:"name,omitempty"`
	VersionInfo         string               `json:"versionInfo,omitempty"`
	Summary             string               `json:"summary,omitempty"`
	LicenseConcluded    string               `json:"licenseConcluded,omitempty"`
	PURL                string               `json:"purl,omitempty"`
	PrimaryPurpose      string               `json:"primaryPurpose,omitempty"`
	ExternalIdentifier  []ExternalIdentifier `json:"externalIdentifier,omitempty"`
	VerifiedUsing       []VerifiedUsing      `json:"verifiedUsing,omitempty"`
}

// ToElement converts the wire shape to the internal Element type.
func (w ElementWire) ToElement() Element {
	return Element{
		SpdxID:              w.SpdxID,
		Type:                w.Type,
		Name:                w.Name,
		VersionInfo:         w.VersionInfo,
		Summary:             w.Summary,
		LicenseConcluded:    w.LicenseConcluded,
		PURL:                w.PURL,
		PrimaryPurpose:      w.PrimaryPurpose,
		ExternalIdentifiers: w.ExternalIdentifier,
		VerifiedUsing:       w.VerifiedUsing,
	}
}

// ElementWireFrom builds the wire shape for writing from an internal Element.
func ElementWireFrom(e Element) ElementWire {
	return ElementWire{
		SpdxID:             e.SpdxID,
		Type:               e.Type,
		Name:               e.Name,
		VersionInfo:        e.VersionInfo,
		Summary:            e.Summary,
		LicenseConcluded:   e.LicenseConcluded,
		PURL:               e.PURL,
		PrimaryPurpose:     e.PrimaryPurpose,
		ExternalIdentifier: e.ExternalIdentifiers,
		VerifiedUsing:      e.VerifiedUsing,
	}
}

// RelationshipWire is the simple-JSON wire shape for an SPDX relationship.
type RelationshipWire struct {
	SpdxElementID       string `json:"spdxElementId"`
	RelationshipType    string `json:"relationshipType"`
	RelatedSpdxElement  string `json:"relatedSpdxElement"`
}

func (w RelationshipWire) ToRelationship() Relationship {
	return Relationship{From: w.SpdxElementID, RelationshipType: w.RelationshipType, To: w.RelatedSpdxElement}
}

func RelationshipWireFrom(r Relationship) RelationshipWire {
	return RelationshipWire{SpdxElementID: r.From, RelationshipType: r.RelationshipType, RelatedSpdxElement: r.To}
}
