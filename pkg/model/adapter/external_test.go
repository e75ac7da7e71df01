package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
)

func TestCPEFromExternalIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		ids  []model.ExternalIdentifier
		want string
	}{
		{
			name: "cpe23Type spelling",
			ids:  []model.ExternalIdentifier{{Type: "cpe23Type", Identifier: "cpe:2.3:a:foo:bar:1.0"}},
			want: "cpe:2.3:a:foo:bar:1.0",
		},
		{
			name: "cpe23 spelling",
			ids:  []model.ExternalIdentifier{{Type: "cpe23", Identifier: "cpe:2.3:a:foo:bar:2.0"}},
			want: "cpe:2.3:a:foo:bar:2.0",
		},
		{
			name: "no cpe present",
			ids:  []model.ExternalIdentifier{{Type: "purl", Identifier: "pkg:golang/foo"}},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.CPEFromExternalIdentifiers(tt.ids))
		})
	}
}

func TestPURLFromElement(t *testing.T) {
	t.Run("externalIdentifier takes precedence", func(t *testing.T) {
		e := model.Element{
			PURL:                "pkg:golang/fallback",
			ExternalIdentifiers: []model.ExternalIdentifier{{Type: "purl", Identifier: "pkg:golang/preferred"}},
		}
		assert.Equal(t, "pkg:golang/preferred", adapter.PURLFromElement(e))
	})

	t.Run("falls back to element PURL field", func(t *testing.T) {
		e := model.Element{PURL: "pkg:golang/fallback"}
		assert.Equal(t, "pkg:golang/fallback", adapter.PURLFromElement(e))
	})

	t.Run("empty when neither is present", func(t *testing.T) {
		assert.Equal(t, "", adapter.PURLFromElement(model.Element{}))
	})
}

func TestExternalIdentifiersForComponent(t *testing.T) {
	t.Run("both cpe and purl", func(t *testing.T) {
		ids := adapter.ExternalIdentifiersForComponent("cpe:2.3:a:foo:bar:1.0", "pkg:golang/foo")
		assert.Equal(t, []model.ExternalIdentifier{
			{Type: "cpe23Type", Identifier: "cpe:2.3:a:foo:bar:1.0"},
			{Type: "purl", Identifier: "pkg:golang/foo"},
		}, ids)
	})

	t.Run("only purl", func(t *testing.T) {
		ids := adapter.ExternalIdentifiersForComponent("", "pkg:golang/foo")
		assert.Equal(t, []model.ExternalIdentifier{{Type: "purl", Identifier: "pkg:golang/foo"}}, ids)
	})

	t.Run("neither", func(t *testing.T) {
		assert.Nil(t, adapter.ExternalIdentifiersForComponent("", ""))
	})
}
