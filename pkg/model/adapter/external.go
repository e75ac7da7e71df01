package adapter

import "github.com/aquasecurity/sbomconv/pkg/model"

// External identifier type spellings. The reader accepts both spellings for
// CPE (producers disagree on "cpe23Type" vs "cpe23"); the writer always
// emits "cpe23Type".
const (
	ExtIDTypeCPEWrite = "cpe23Type"
	ExtIDTypeCPERead1 = "cpe23Type"
	ExtIDTypeCPERead2 = "cpe23"
	ExtIDTypePURL     = "purl"
	ExtIDTypeCVE      = "cve"
)

// CPEFromExternalIdentifiers extracts a CPE value from an SPDX element's
// externalIdentifier list, accepting either spelling of the CPE type.
func CPEFromExternalIdentifiers(ids []model.ExternalIdentifier) string {
	for _, id := range ids {
		if id.Type == ExtIDTypeCPERead1 || id.Type == ExtIDTypeCPERead2 {
			return id.Identifier
		}
	}
	return ""
}

// PURLFromElement extracts a PURL, preferring the externalIdentifier
// placement and falling back to the simple-JSON top-level "purl" field the
// reader has already copied onto Element.PURL when no externalIdentifier
// entry was present.
func PURLFromElement(e model.Element) string {
	for _, id := range e.ExternalIdentifiers {
		if id.Type == ExtIDTypePURL {
			return id.Identifier
		}
	}
	return e.PURL
}

// ExternalIdentifiersForComponent builds the externalIdentifier list written
// for a CDX component's cpe/purl fields when emitting SPDX.
func ExternalIdentifiersForComponent(cpe, purl string) []model.ExternalIdentifier {
	var ids []model.ExternalIdentifier
	if cpe != "" {
		ids = append(ids, model.ExternalIdentifier{Type: ExtIDTypeCPEWrite, Identifier: cpe})
	}
	if purl != "" {
		ids = append(ids, model.ExternalIdentifier{Type: ExtIDTypePURL, Identifier: purl})
	}
	return ids
}
