package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: "info", Format: "text"})

	log.Debug("hidden")
	log.Info("client created", "client_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=\"client created\"")
	assert.Contains(t, out, "client_id=7")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: "debug", Format: "json"})

	log.Debug("export written", "path", "/tmp/x.pdf")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "export written", rec["msg"])
	assert.Equal(t, "/tmp/x.pdf", rec["path"])
}

func TestNewFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, closer, err := NewFile(path, Options{Level: "info"})
	require.NoError(t, err)
	log.Info("first")
	require.NoError(t, closer.Close())

	log, closer, err = NewFile(path, Options{Level: "info"})
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "level=INFO"))
}
