package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
)

func TestExtractCVE(t *testing.T) {
	tests := []struct {
		name    string
		element model.Element
		wantID  string
		wantOK  bool
	}{
		{
			name: "external identifier of type cve wins",
			element: model.Element{
				SpdxID:              "SPDXRef-Vulnerability-CVE-2024-9999",
				ExternalIdentifiers: []model.ExternalIdentifier{{Type: "cve", Identifier: "CVE-2024-1111"}},
			},
			wantID: "CVE-2024-1111",
			wantOK: true,
		},
		{
			name: "falls back to spdxId path segment",
			element: model.Element{
				SpdxID: "https://example.com/vulnerability/CVE-2024-2222",
			},
			wantID: "CVE-2024-2222",
			wantOK: true,
		},
		{
			name: "neither source yields an id",
			element: model.Element{
				SpdxID: "https://example.com/element/foo",
			},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := adapter.ExtractCVE(tt.element)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
