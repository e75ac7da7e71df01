package cdx2spdx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/aquasecurity/sbomconv/pkg/convert/cdx2spdx"
	"github.com/aquasecurity/sbomconv/pkg/progress"
)

func clockEpoch() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
}

const sampleCDX = `{
  "bomFormat": "CycloneDX",
  "specVersion": "1.5",
  "components": [
    {"bom-ref": "comp-a", "type": "library", "name": "a", "version": "1.0"},
    {"bom-ref": "comp-b", "type": "library", "name": "b", "version": "2.0"}
  ],
  "dependencies": [
    {"ref": "comp-a", "dependsOn": ["comp-b"]}
  ],
  "vulnerabilities": [
    {"id": "CVE-2023-1234", "description": "bad bug", "affects": [{"ref": "comp-a"}]}
  ]
}`

func fixedUUID() uuid.UUID {
	u, _ := uuid.Parse("00000000-0000-0000-0000-000000000001")
	return u
}

func TestConvert_OrdersElementsBeforeRelationships(t *testing.T) {
	var out bytes.Buffer
	stats, err := cdx2spdx.Convert(context.Background(), strings.NewReader(sampleCDX), &out, cdx2spdx.Options{
		Clock:    testingclock.NewFakeClock(clockEpoch()),
		NewUUID:  fixedUUID,
		Progress: progress.New(0, nil),
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	elements, ok := doc["elements"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 3, "two components plus one deferred vulnerability element")

	relationships, ok := doc["relationships"].([]any)
	require.True(t, ok)
	require.Len(t, relationships, 2, "one dependsOn edge plus one AFFECTS edge")

	idxElements := strings.Index(out.String(), `"elements"`)
	idxRelationships := strings.Index(out.String(), `"relationships"`)
	require.Less(t, idxElements, idxRelationships, "elements must be written before relationships")

	require.Equal(t, int64(3), stats.Elements)
	require.Equal(t, int64(2), stats.Relationships)
}

func TestConvert_VulnerabilityElementTrailsComponents(t *testing.T) {
	var out bytes.Buffer
	_, err := cdx2spdx.Convert(context.Background(), strings.NewReader(sampleCDX), &out, cdx2spdx.Options{
		Clock:    testingclock.NewFakeClock(clockEpoch()),
		NewUUID:  fixedUUID,
		Progress: progress.New(0, nil),
	})
	require.NoError(t, err)

	full := out.String()
	idxCompA := strings.Index(full, `"SPDXRef-comp-a"`)
	idxVuln := strings.Index(full, `CVE-2023-1234`)
	require.Less(t, idxCompA, idxVuln, "component elements must precede the deferred vulnerability element")
}

func TestConvert_EmptyDocumentProducesValidEmptyArrays(t *testing.T) {
	var out bytes.Buffer
	_, err := cdx2spdx.Convert(context.Background(), strings.NewReader(`{}`), &out, cdx2spdx.Options{
		Clock:    testingclock.NewFakeClock(clockEpoch()),
		NewUUID:  fixedUUID,
		Progress: progress.New(0, nil),
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Empty(t, doc["elements"])
	require.Empty(t, doc["relationships"])
}
