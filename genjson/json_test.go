package genjson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

func TestEncodeUnmarshal(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Encode(&buf, []pair{{Base: "2", Value: "0.125"}}))
	assert.Equal(t, "[\n  {\n    \"base\": \"2\",\n    \"value\": \"0.125\"\n  }\n]\n", buf.String())

	got, err := Unmarshal[[]pair](buf.Bytes())
	require.Nil(t, err)
	assert.Equal(t, []pair{{Base: "2", Value: "0.125"}}, got)
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal[[]pair]([]byte("{"))
	assert.NotNil(t, err)
}
