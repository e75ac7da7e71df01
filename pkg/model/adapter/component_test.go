package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/sbomconv/pkg/model"
	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
)

func TestComponentToElement(t *testing.T) {
	c := model.Component{
		BOMRef:      "pkg-foo",
		Type:        "library",
		Name:        "foo",
		Version:     "1.2.3",
		Description: "a library",
		CPE:         "cpe:2.3:a:foo:foo:1.2.3:*:*:*:*:*:*:*",
		PURL:        "pkg:generic/foo@1.2.3",
		Hashes:      []model.Hash{{Alg: "SHA-256", Content: "deadbeef"}},
		Licenses:    []model.LicenseChoice{{Expression: "MIT"}},
	}

	e := adapter.ComponentToElement(c)

	assert.Equal(t, "SPDXRef-pkg-foo", e.SpdxID)
	assert.Equal(t, model.TypeSpdxPackage, e.Type)
	assert.Equal(t, "foo", e.Name)
	assert.Equal(t, "1.2.3", e.VersionInfo)
	assert.Equal(t, "MIT", e.LicenseConcluded)
	require.Len(t, e.VerifiedUsing, 1)
	assert.Equal(t, "sha256", e.VerifiedUsing[0].Algorithm)
}

func TestComponentToElement_MissingName(t *testing.T) {
	e := adapter.ComponentToElement(model.Component{BOMRef: "x"})
	assert.Equal(t, adapter.UnknownName, e.Name)
}

func TestComponentToElement_FileType(t *testing.T) {
	e := adapter.ComponentToElement(model.Component{BOMRef: "x", Type: "file", Name: "x.txt"})
	assert.Equal(t, model.TypeSpdxFile, e.Type)
}

func TestComponentToElement_ScopeBecomesPrimaryPurpose(t *testing.T) {
	e := adapter.ComponentToElement(model.Component{BOMRef: "x", Name: "x", Scope: "required"})
	assert.Equal(t, "install", e.PrimaryPurpose)
}

func TestComponentToElement_LicenseIDOnlyIsNotDropped(t *testing.T) {
	c := model.Component{
		BOMRef:   "x",
		Name:     "x",
		Licenses: []model.LicenseChoice{{License: &model.License{ID: "MIT"}}},
	}
	e := adapter.ComponentToElement(c)
	assert.Equal(t, "MIT", e.LicenseConcluded)
}

func TestComponentToElement_LicenseNameOnlyFallsBack(t *testing.T) {
	c := model.Component{
		BOMRef:   "x",
		Name:     "x",
		Licenses: []model.LicenseChoice{{License: &model.License{Name: "Proprietary EULA"}}},
	}
	e := adapter.ComponentToElement(c)
	assert.Equal(t, "Proprietary EULA", e.LicenseConcluded)
}

func TestElementToComponent(t *testing.T) {
	e := model.Element{
		SpdxID:      "SPDXRef-foo",
		Type:        model.TypeSpdxPackage,
		Name:        "foo",
		VersionInfo: "1.2.3",
		ExternalIdentifiers: []model.ExternalIdentifier{
			{Type: "cpe23Type", Identifier: "cpe:2.3:a:foo:foo:1.2.3:*:*:*:*:*:*:*"},
			{Type: "purl", Identifier: "pkg:generic/foo@1.2.3"},
		},
		VerifiedUsing: []model.VerifiedUsing{
			{Algorithm: "sha256", HashValue: "deadbeef"},
			{Algorithm: "", HashValue: "shouldbedropped"},
		},
	}

	c := adapter.ElementToComponent(e)

	assert.Equal(t, "foo", c.BOMRef)
	assert.Equal(t, "library", c.Type)
	assert.Equal(t, "pkg:generic/foo@1.2.3", c.PURL)
	assert.Equal(t, "cpe:2.3:a:foo:foo:1.2.3:*:*:*:*:*:*:*", c.CPE)
	require.Len(t, c.Hashes, 1, "a hash with no algorithm must be dropped")
	assert.Equal(t, "SHA-256", c.Hashes[0].Alg)
}

func TestElementToComponent_FileType(t *testing.T) {
	c := adapter.ElementToComponent(model.Element{SpdxID: "SPDXRef-x", Type: model.TypeSpdxFile, Name: "x"})
	assert.Equal(t, "file", c.Type)
}

func TestElementToComponent_PrimaryPurposeBecomesScope(t *testing.T) {
	c := adapter.ElementToComponent(model.Element{SpdxID: "SPDXRef-x", Name: "x", PrimaryPurpose: "install"})
	assert.Equal(t, "required", c.Scope)
}
