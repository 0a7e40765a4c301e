// Package config loads and saves clientrec settings.
//
// Settings live in an ini file inside the application directory:
//
//	[database]
//	path = /home/me/.config/clientrec/clientrec.db
//
//	[export]
//	dir    = /home/me/.config/clientrec/exports
//	locale = en
//
//	[log]
//	level  = warn
//	format = text
//	file   = /home/me/.config/clientrec/clientrec.log
//
// Resolution order is defaults, then the file, then command-line flags
// (applied by the cmd package).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/inovacc/clientrec/internal/locale"
	"gopkg.in/ini.v1"
)

// Config holds the application configuration
type Config struct {
	// DatabasePath is the SQLite file holding users, clients and reports
	DatabasePath string

	// OutputDir is where exported documents are written
	OutputDir string

	// Locale selects the language of document headers (en, es)
	Locale string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is text or json
	LogFormat string

	// LogFile is where the interactive shell writes its log
	LogFile string
}

// Default returns a Config rooted at dir.
func Default(dir string) Config {
	return Config{
		DatabasePath: filepath.Join(dir, application.DatabaseFile),
		OutputDir:    filepath.Join(dir, application.ExportDir),
		Locale:       "en",
		LogLevel:     "warn",
		LogFormat:    "text",
		LogFile:      filepath.Join(dir, application.LogFile),
	}
}

// Load reads path on top of the defaults for dir. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path, dir string) (Config, error) {
	cfg := Default(dir)

	file, err := ini.LooseLoad(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	db := file.Section("database")
	cfg.DatabasePath = db.Key("path").MustString(cfg.DatabasePath)

	export := file.Section("export")
	cfg.OutputDir = export.Key("dir").MustString(cfg.OutputDir)
	cfg.Locale = export.Key("locale").In(cfg.Locale, locale.Supported)

	log := file.Section("log")
	cfg.LogLevel = log.Key("level").In(cfg.LogLevel, []string{"debug", "info", "warn", "error"})
	cfg.LogFormat = log.Key("format").In(cfg.LogFormat, []string{"text", "json"})
	cfg.LogFile = log.Key("file").MustString(cfg.LogFile)

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file := ini.Empty()
	file.Section("database").Key("path").SetValue(cfg.DatabasePath)
	file.Section("export").Key("dir").SetValue(cfg.OutputDir)
	file.Section("export").Key("locale").SetValue(cfg.Locale)
	file.Section("log").Key("level").SetValue(cfg.LogLevel)
	file.Section("log").Key("format").SetValue(cfg.LogFormat)
	file.Section("log").Key("file").SetValue(cfg.LogFile)

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database path is empty")
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("export directory is empty")
	}

	if !slices.Contains(locale.Supported, c.Locale) {
		return fmt.Errorf("unsupported locale %q", c.Locale)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}

	return nil
}
