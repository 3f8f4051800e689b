// Package paths finds where itembridge keeps its config.yaml, where an
// operator's replacement item tables live, and where table dumps go.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the per-user config and data roots.
const AppName = "itembridge"

// Environment variables that override the directory defaults.
const (
	EnvConfigDir   = "ITEMBRIDGE_CONFIG_DIR"
	EnvResourceDir = "ITEMBRIDGE_RESOURCE_DIR"
	EnvDataDir     = "ITEMBRIDGE_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// userDir returns the itembridge directory under an XDG root on Linux and
// under os.UserConfigDir elsewhere. xdgEnv names the XDG variable and
// homeRel the path below $HOME used when it is unset.
func userDir(xdgEnv string, homeRel ...string) (string, error) {
	if runtime.GOOS != "linux" {
		root, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, AppName), nil
	}
	if root := os.Getenv(xdgEnv); root != "" {
		return filepath.Join(root, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, homeRel...), AppName)...), nil
}

// DefaultConfigDir is where config.yaml lives when nothing overrides it:
// $XDG_CONFIG_HOME/itembridge or ~/.config/itembridge on Linux, the user
// config directory elsewhere.
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir is where dump and import write snapshots when no path is
// given: $XDG_DATA_HOME/itembridge or ~/.local/share/itembridge on Linux,
// the user config directory elsewhere.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// firstAbs returns the first non-empty candidate as an absolute path, or ""
// when every candidate is empty.
func firstAbs(candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return "", nil
}

// ResolveConfigDir picks the config directory: --config-dir, then
// ITEMBRIDGE_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, err := firstAbs(flag, os.Getenv(EnvConfigDir)); dir != "" || err != nil {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveResourceDir picks the item table override: --resource-dir, then
// resource_dir from config.yaml, then ITEMBRIDGE_RESOURCE_DIR. An empty
// result means the embedded tables are used.
func ResolveResourceDir(flag, configYAMLValue string) (string, error) {
	return firstAbs(flag, configYAMLValue, os.Getenv(EnvResourceDir))
}

// ResolveDataDir picks the dump directory: an explicit path, then
// ITEMBRIDGE_DATA_DIR, then DefaultDataDir.
func ResolveDataDir(flag string) (string, error) {
	if dir, err := firstAbs(flag, os.Getenv(EnvDataDir)); dir != "" || err != nil {
		return dir, err
	}
	return DefaultDataDir()
}
