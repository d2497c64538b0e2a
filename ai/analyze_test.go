package ai

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	attrs, err := ParseAttributes([]byte(`{"type":"shirt","color":"blue","texture":"cotton","brand":"Acme","fit":"slim","season":"summer"}`))
	require.NoError(t, err)
	assert.Equal(t, "shirt", attrs.Type)
	assert.Equal(t, "Acme", attrs.Brand)
}

func TestParseAttributesDefaultsBrand(t *testing.T) {
	attrs, err := ParseAttributes([]byte(`{"type":"shirt","color":"blue","texture":"cotton","fit":"slim","season":"all"}`))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", attrs.Brand)
}

func TestParseAttributesErrors(t *testing.T) {
	_, err := ParseAttributes([]byte(`{"color":"blue","season":"all"}`))
	assert.Error(t, err)

	_, err = ParseAttributes([]byte(`{"type":"shirt","color":"blue","season":"monsoon"}`))
	assert.Error(t, err)

	_, err = ParseAttributes([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("fake image bytes")
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)

	mimeType, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
	assert.Equal(t, payload, data)
}

func TestDecodeDataURIDefaultsMIMEType(t *testing.T) {
	mimeType, data, err := DecodeDataURI("data:;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeDataURIErrors(t *testing.T) {
	_, _, err := DecodeDataURI("https://example.com/a.png")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png")
	assert.Error(t, err)

	_, _, err = DecodeDataURI("data:image/png;base64,%%%")
	assert.Error(t, err)
}
