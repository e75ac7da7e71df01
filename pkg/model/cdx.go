// Package model holds the minimal CDX and SPDX entity shapes the converters
// read and write one record at a time. Fields not listed here are skipped by
// pkg/jsonstream and never round-tripped; that is by design (see spec).
package model

// Hash is a single CycloneDX-style hash entry.
type Hash struct {
	Alg     string `json:"alg"`
	Content string `json:"content"`
}

// License is the CDX license-choice tri-state: either a bare SPDX expression,
// or an {id|name} license object. Only one of Expression/ID/Name is set.
type License struct {
	Expression string `json:"expression,omitempty"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
}

// LicenseChoice mirrors CycloneDX's licenses[] entry shape: {"license": {...}}
// or {"expression": "..."}.
type LicenseChoice struct {
	Expression string   `json:"expression,omitempty"`
	License    *License `json:"license,omitempty"`
}

// Component is a minimal CycloneDX component record.
type Component struct {
	BOMRef      string          `json:"bom-ref"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Version     string          `json:"version,omitempty"`
	Description string          `json:"description,omitempty"`
	PURL        string          `json:"purl,omitempty"`
	CPE         string          `json:"cpe,omitempty"`
	Scope       string          `json:"scope,omitempty"`
	Hashes      []Hash          `json:"hashes,omitempty"`
	Licenses    []LicenseChoice `json:"licenses,omitempty"`
}

// Dependency is a minimal CycloneDX dependency record.
type Dependency struct {
	Ref        string   `json:"ref"`
	DependsOn  []string `json:"dependsOn,omitempty"`
}

// VulnSource identifies the origin of a vulnerability record.
type VulnSource struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// VulnAnalysis is CycloneDX's vulnerability.analysis object.
type VulnAnalysis struct {
	State  string `json:"state,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// VulnAffects is one entry of vulnerability.affects[].
type VulnAffects struct {
	Ref string `json:"ref"`
}

// Vulnerability is a minimal CycloneDX vulnerability record.
type Vulnerability struct {
	ID          string        `json:"id"`
	Source      *VulnSource   `json:"source,omitempty"`
	Description string        `json:"description,omitempty"`
	Analysis    *VulnAnalysis `json:"analysis,omitempty"`
	Affects     []VulnAffects `json:"affects,omitempty"`
}
