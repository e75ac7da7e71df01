package adapter

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// BomRefToSpdxID implements the inverse mapping: "SPDXRef-" + r.
func BomRefToSpdxID(ref string) string {
	return "SPDXRef-" + ref
}

// SpdxIDToBomRef implements spec.md §4.1's identifier mapping. For a
// JSON-LD URI it derives "{slug}-{16 hex}" from a stable 64-bit hash of the
// full URI; for a legacy "SPDXRef-*" id it strips the prefix. This mapping
// is lossy for JSON-LD inputs by design: two distinct URIs that happen to
// share both a slug and a hash collision would round-trip to the same
// bom-ref, which is why the full URI (not just its last segment) feeds the
// hash.
func SpdxIDToBomRef(spdxID string) string {
	if strings.HasPrefix(spdxID, "http://") || strings.HasPrefix(spdxID, "https://") {
		return uriToBomRef(spdxID)
	}
	return strings.TrimPrefix(spdxID, "SPDXRef-")
}

func uriToBomRef(uri string) string {
	slug := slugify(uri)
	h := fnv.New64a()
	_, _ = h.Write([]byte(uri))
	return fmt.Sprintf("%s-%016x", slug, h.Sum64())
}

// slugify takes the last path segment of a URI and keeps only its letters,
// falling back to "element" when nothing usable remains (e.g. the URI ends
// in a pure-numeric or empty segment).
func slugify(uri string) string {
	segment := uri
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		segment = uri[i+1:]
	}

	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "element"
	}
	return b.String()
}
