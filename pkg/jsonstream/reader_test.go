package jsonstream_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/sbomconv/pkg/jsonstream"
)

func TestReader_KeysSkipsUnconsumedValues(t *testing.T) {
	r := jsonstream.New(strings.NewReader(`{"a":1,"b":[1,2,3],"c":"x"}`), "test")

	ok, err := r.ExpectObject()
	require.NoError(t, err)
	require.True(t, ok)

	var seen []string
	err = r.Keys(func(key string) (bool, error) {
		seen = append(seen, key)
		return false, nil // skip every value
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestReader_KeysDecodesConsumedValues(t *testing.T) {
	r := jsonstream.New(strings.NewReader(`{"name":"foo","count":3}`), "test")

	ok, err := r.ExpectObject()
	require.NoError(t, err)
	require.True(t, ok)

	var name string
	var count int
	err = r.Keys(func(key string) (bool, error) {
		switch key {
		case "name":
			return true, r.DecodeInto(&name)
		case "count":
			return true, r.DecodeInto(&count)
		}
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "foo", name)
	assert.Equal(t, 3, count)
}

func TestReader_KeysPropagatesCallbackError(t *testing.T) {
	r := jsonstream.New(strings.NewReader(`{"a":{"nested":true}}`), "test")

	ok, err := r.ExpectObject()
	require.NoError(t, err)
	require.True(t, ok)

	type wrongShape struct {
		Nested string `json:"nested"`
	}

	err = r.Keys(func(key string) (bool, error) {
		var v wrongShape
		return true, r.DecodeInto(&v)
	})
	assert.Error(t, err, "a decode type mismatch inside a callback must not be silently swallowed")
}

func TestReader_ArrayIteratesInOrder(t *testing.T) {
	r := jsonstream.New(strings.NewReader(`[10,20,30]`), "test")

	var got []int
	err := r.Array(func(idx int) (bool, error) {
		var v int
		if err := r.DecodeInto(&v); err != nil {
			return true, err
		}
		got = append(got, v)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestReader_ExpectObject_EmptyInputIsNotAnError(t *testing.T) {
	r := jsonstream.New(strings.NewReader(``), "test")
	ok, err := r.ExpectObject()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReader_Offset_TracksBytesConsumed(t *testing.T) {
	r := jsonstream.New(strings.NewReader(`{"a":1}`), "test")
	ok, err := r.ExpectObject()
	require.NoError(t, err)
	require.True(t, ok)

	err = r.Keys(func(key string) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Positive(t, r.Offset())
}
