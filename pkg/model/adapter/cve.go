package adapter

import (
	"strings"

	"github.com/aquasecurity/sbomconv/pkg/model"
)

const vulnPathSegment = "/vulnerability/"

// ExtractCVE implements spec.md §4.1's CVE extraction order: prefer an
// externalIdentifier of type "cve", then fall back to the substring after
// "/vulnerability/" in the spdxId URI. Returns ok=false when neither yields
// a usable id, signaling the caller to skip the vulnerability with a
// warning rather than fail the whole conversion.
func ExtractCVE(e model.Element) (id string, ok bool) {
	for _, eid := range e.ExternalIdentifiers {
		if eid.Type == ExtIDTypeCVE && eid.Identifier != "" {
			return eid.Identifier, true
		}
	}

	if i := strings.Index(e.SpdxID, vulnPathSegment); i >= 0 {
		rest := e.SpdxID[i+len(vulnPathSegment):]
		if rest != "" {
			return rest, true
		}
	}

	return "", false
}
