package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/inovacc/clientrec/internal/application"
	"github.com/inovacc/clientrec/internal/auth"
	"github.com/inovacc/clientrec/internal/config"
	"github.com/inovacc/clientrec/internal/export"
	"github.com/inovacc/clientrec/internal/logging"
	"github.com/inovacc/clientrec/internal/shell"
	"github.com/inovacc/clientrec/internal/store"
)

type logTarget int

const (
	logToStderr logTarget = iota
	logToFile
)

// env is everything a command needs to touch the records.
type env struct {
	cfg     config.Config
	cfgPath string
	log     *slog.Logger
	store   *store.Store
	auth    *auth.Manager
	docs    *export.Exporter
	closers []io.Closer
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then the persistent flags.
func loadConfig() (config.Config, string, error) {
	path := configPath

	var dir string

	if path == "" {
		d, err := application.EnsureApplicationDirectory()
		if err != nil {
			return config.Config{}, "", err
		}

		dir = d
		path = filepath.Join(dir, application.ConfigFile)
	} else {
		p, err := expandPath(path)
		if err != nil {
			return config.Config{}, "", err
		}

		path = p
		dir = filepath.Dir(p)
	}

	cfg, err := config.Load(path, dir)
	if err != nil {
		return cfg, path, err
	}

	if dbPath != "" {
		if cfg.DatabasePath, err = expandPath(dbPath); err != nil {
			return cfg, path, err
		}
	}

	if outputDir != "" {
		if cfg.OutputDir, err = expandPath(outputDir); err != nil {
			return cfg, path, err
		}
	}

	if localeFlag != "" {
		cfg.Locale = localeFlag
	}

	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, path, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, path, nil
}

func openEnv(ctx context.Context, target logTarget) (*env, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, cfgPath: path}

	opts := logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}

	switch target {
	case logToFile:
		log, closer, err := logging.NewFile(cfg.LogFile, opts)
		if err != nil {
			return nil, err
		}

		e.log = log
		e.closers = append(e.closers, closer)
	default:
		e.log = logging.New(os.Stderr, opts)
	}

	st, err := store.Open(ctx, cfg.DatabasePath, store.WithLogger(e.log))
	if err != nil {
		e.Close()
		return nil, err
	}

	e.store = st
	e.closers = append(e.closers, st)
	e.auth = auth.NewManager(st, auth.WithLogger(e.log))

	docs, err := export.New(cfg.OutputDir, export.WithLocale(cfg.Locale), export.WithLogger(e.log))
	if err != nil {
		e.Close()
		return nil, err
	}

	e.docs = docs

	e.log.Debug("environment ready", "config", path, "database", cfg.DatabasePath)

	return e, nil
}

// Close releases the store and the log file, newest first.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

func (e *env) info() shell.Info {
	return shell.Info{
		ConfigPath:   e.cfgPath,
		DatabasePath: e.cfg.DatabasePath,
		OutputDir:    e.cfg.OutputDir,
		LogFile:      e.cfg.LogFile,
		Locale:       e.cfg.Locale,
	}
}
