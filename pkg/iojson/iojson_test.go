package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"rows": 2}))
	assert.Equal(t, "{\n  \"rows\": 2\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"fn": func() {}})
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"message":"json marshal failed"`)
	assert.Contains(t, errOut.String(), `"type":"map[string]interface {}"`)
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, struct {
		Command string `json:"command"`
	}{Command: "w"}))
	require.NoError(t, WriteLine(&out, []int{1, 2}))
	assert.Equal(t, "{\"command\":\"w\"}\n[1,2]\n", out.String())

	require.Error(t, WriteLine(&out, make(chan int)))
}
