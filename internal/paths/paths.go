// Package paths resolves where the recipe book keeps its configuration and
// its data. Every location follows the same precedence: explicit flag, then
// environment, then the platform default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform base directories.
const AppName = "recipebook"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RECIPEBOOK_CONFIG_DIR"
	EnvDataDir   = "RECIPEBOOK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/recipebook (fallback ~/.config/recipebook)
// macOS:   ~/Library/Application Support/recipebook
// Windows: %APPDATA%/recipebook
func DefaultConfigDir() (string, error) {
	return platformAppDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific data directory.
//
// Linux:   $XDG_DATA_HOME/recipebook (fallback ~/.local/share/recipebook)
// macOS and Windows share the configuration directory.
func DefaultDataDir() (string, error) {
	return platformAppDir("XDG_DATA_HOME", ".local", "share")
}

// platformAppDir resolves AppName under an XDG base directory on Linux and
// under os.UserConfigDir elsewhere.
func platformAppDir(xdgEnv string, homeFallback ...string) (string, error) {
	if platformDir.goos != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgEnv); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, homeFallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// ResolveConfigDir returns the configuration directory:
// flag > RECIPEBOOK_CONFIG_DIR > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	return firstAbs(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir returns the data directory:
// flag > config.yaml data_dir > RECIPEBOOK_DATA_DIR > DefaultDataDir().
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	return firstAbs(DefaultDataDir, flag, configYAMLValue, os.Getenv(EnvDataDir))
}

// firstAbs returns the first non-empty candidate as an absolute path, or
// the result of fallback when all are empty.
func firstAbs(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return fallback()
}
