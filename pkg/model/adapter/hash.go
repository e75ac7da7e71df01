package adapter

import "strings"

// NormalizeHashAlgToCDX converts an SPDX-spelled algorithm (lowercase, e.g.
// "sha256") to the canonical CDX spelling (hyphenated uppercase, e.g.
// "SHA-256"). Any other algorithm is simply uppercased, matching spec.md §8:
// normalize("sha1") = "SHA-1"; normalize("SHA-256") = "SHA-256" (idempotent);
// any other algorithm becomes its uppercase form with no other change.
func NormalizeHashAlgToCDX(alg string) string {
	upper := strings.ToUpper(alg)
	switch upper {
	case "SHA1", "SHA256":
		return "SHA-" + upper[3:]
	default:
		return upper
	}
}

// NormalizeHashAlgToSPDX converts a CDX-spelled algorithm (hyphenated
// uppercase, e.g. "SHA-256") to the canonical SPDX spelling (lowercase, no
// hyphen, e.g. "sha256"). Other families are lowercased the same way, with
// any hyphens removed too.
func NormalizeHashAlgToSPDX(alg string) string {
	lower := strings.ToLower(alg)
	return strings.ReplaceAll(lower, "-", "")
}
