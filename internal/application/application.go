package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "clientrec"

	// AppTitle is the human-readable name shown in menus and documents
	AppTitle = "Client Records"

	// Version is the application version reported by `clientrec version`
	Version = "1.0.0"

	// DatabaseFile is the default SQLite file name inside the application directory
	DatabaseFile = "clientrec.db"

	// ConfigFile is the default configuration file name inside the application directory
	ConfigFile = "config.ini"

	// LogFile is the default log file name used by the interactive shell
	LogFile = "clientrec.log"

	// ExportDir is the default directory name for generated documents
	ExportDir = "exports"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the clientrec data directory path.
// Linux: ~/.config/clientrec (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\clientrec (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureApplicationDirectory returns the data directory, creating it if needed.
func EnsureApplicationDirectory() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create application directory: %w", err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
