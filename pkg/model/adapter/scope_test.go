package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquasecurity/sbomconv/pkg/model/adapter"
)

func TestScopeToPurpose(t *testing.T) {
	tests := []struct {
		scope string
		want  string
	}{
		{adapter.ScopeRequired, adapter.PurposeInstall},
		{adapter.ScopeOptional, adapter.PurposeOptional},
		{adapter.ScopeExcluded, adapter.PurposeOther},
		{"unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.ScopeToPurpose(tt.scope))
		})
	}
}

func TestPurposeToScope(t *testing.T) {
	tests := []struct {
		purpose string
		want    string
	}{
		{adapter.PurposeInstall, adapter.ScopeRequired},
		{adapter.PurposeOptional, adapter.ScopeOptional},
		{adapter.PurposeSource, adapter.ScopeExcluded},
		{adapter.PurposeBuild, adapter.ScopeExcluded},
		{adapter.PurposeOther, ""},
		{"unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.purpose, func(t *testing.T) {
			assert.Equal(t, tt.want, adapter.PurposeToScope(tt.purpose))
		})
	}
}
