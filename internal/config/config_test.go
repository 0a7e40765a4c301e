package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("/data/clientrec")

	assert.Equal(t, filepath.Join("/data/clientrec", "clientrec.db"), cfg.DatabasePath)
	assert.Equal(t, filepath.Join("/data/clientrec", "exports"), cfg.OutputDir)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nope.ini"), dir)
	require.NoError(t, err)
	assert.Equal(t, Default(dir), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.ini")

	want := Config{
		DatabasePath: "/tmp/records.db",
		OutputDir:    "/tmp/out",
		Locale:       "es",
		LogLevel:     "debug",
		LogFormat:    "json",
		LogFile:      "/tmp/clientrec.log",
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_UnknownValuesFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")

	content := "[export]\nlocale = fr\n\n[log]\nlevel = loud\nformat = xml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	base := Default("/data")

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty database", mutate: func(c *Config) { c.DatabasePath = " " }, wantErr: true},
		{name: "empty output", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "de" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "yaml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
