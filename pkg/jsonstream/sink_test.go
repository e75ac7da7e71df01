package jsonstream_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
)

func TestArrayWriter_WriteElement(t *testing.T) {
	var buf bytes.Buffer
	aw := jsonstream.NewArrayWriter(&buf)

	assert.True(t, aw.Empty())

	err := aw.WriteElement(func(w io.Writer) error {
		_, err := w.Write([]byte(`{"a":1}`))
		return err
	})
	require.NoError(t, err)
	assert.False(t, aw.Empty())

	err = aw.WriteElement(func(w io.Writer) error {
		_, err := w.Write([]byte(`{"a":2}`))
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "{\"a\":1},\n{\"a\":2}", buf.String())
}
