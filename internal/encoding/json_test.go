package encoding

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, map[string]int{"clients": 2}))
	assert.Equal(t, "{\n  \"clients\": 2\n}\n", buf.String())
}

func TestWriteJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer

	err := WriteJSON(&buf, math.Inf(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write JSON")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.ini")

	assert.False(t, FileExists(file))
	assert.False(t, FileExists(dir))

	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	assert.True(t, FileExists(file))
}
