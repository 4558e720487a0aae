package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForName(t *testing.T) {
	for _, name := range []string{"nop", "gzip", "brotli", "lz4"} {
		codec, err := ForName(name)
		require.NoError(t, err)
		assert.Equal(t, name, codec.Name())
	}

	codec, err := ForName("")
	require.NoError(t, err)
	assert.Equal(t, "nop", codec.Name(), "empty name means no compression")

	_, err = ForName("zstd")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat(`{"heading":"Living Room","paragraphs":["text"]}`, 50))

	for _, name := range []string{"nop", "gzip", "brotli", "lz4"} {
		codec, err := ForName(name)
		require.NoError(t, err)

		encoded, err := codec.Encode(payload)
		require.NoError(t, err, name)

		decoded, err := codec.Decode(encoded)
		require.NoError(t, err, name)
		assert.Equal(t, payload, decoded, name)
	}
}
