package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
)

func TestVEXRelationshipToAnalysisState(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		want string
	}{
		{"not affected maps to not_affected", model.VexNotAffected, adapter.AnalysisNotAffected},
		{"fixed maps to resolved", model.VexFixed, adapter.AnalysisResolved},
		{"affected maps to in_triage", model.VexAffected, adapter.AnalysisInTriage},
		{"under investigation maps to in_triage", model.VexUnderInvestigation, adapter.AnalysisInTriage},
		{"unrecognized subtype defaults to in_triage", "security_VexSomethingElse", adapter.AnalysisInTriage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.VEXRelationshipToAnalysisState(tt.rel))
		})
	}
}
