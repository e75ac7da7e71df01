package adapter

import "github.com/aquasecurity/sbomconv/pkg/model"

// CDX analysis.state values.
const (
	AnalysisNotAffected = "not_affected"
	AnalysisResolved    = "resolved"
	AnalysisInTriage    = "in_triage"
)

// VEXRelationshipToAnalysisState implements spec.md §4.1's VEX state table:
// a not-affected relationship maps to "not_affected", a fixed relationship
// maps to "resolved", and every other VEX subtype (affected,
// under-investigation, or anything unrecognized) maps to "in_triage".
func VEXRelationshipToAnalysisState(relationshipType string) string {
	switch relationshipType {
	case model.VexNotAffected:
		return AnalysisNotAffected
	case model.VexFixed:
		return AnalysisResolved
	default:
		return AnalysisInTriage
	}
}
