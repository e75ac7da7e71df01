// Package cdxversion implements the output-version policy (C7): the set of
// CDX specVersion strings this converter will emit, independent of the
// common-subset structural shape it actually produces.
package cdxversion

import "github.com/aquasecurity/sbomconv/pkg/sbomerr"

// Supported lists the CDX specVersion strings this converter accepts as an
// emission target.
var Supported = []string{"1.3", "1.4", "1.5", "1.6", "1.7"}

// Default is used when the caller does not request a specific version.
const Default = "1.6"

// Validate returns a PolicyUnsupported error for any version not in
// Supported. It does not down-shape fields for older versions; spec.md §4.6
// makes that the caller's responsibility.
func Validate(version string) error {
	for _, v := range Supported {
		if v == version {
			return nil
		}
	}
	return sbomerr.New(sbomerr.PolicyUnsupported, "cdxversion.Validate", unsupportedVersion(version))
}

type unsupportedVersionErr struct{ version string }

func (e unsupportedVersionErr) Error() string {
	return "unsupported CycloneDX specVersion: " + e.version
}

func unsupportedVersion(v string) error { return unsupportedVersionErr{version: v} }
