// Package config resolves where keyshift settings files live. Settings are
// process options only (logging, tray); the remap table is compiled in.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user config directory and the settings files.
const AppName = "keyshift"

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", AppName), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, AppName), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("HOME not set")
		}
		return filepath.Join(home, ".config", AppName), nil
	}
}

// Format is a settings file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat normalizes a format or extension name. It returns "" for
// unknown formats.
func ParseFormat(s string) Format {
	switch s {
	case "json", ".json":
		return JSON
	case "yaml", "yml", ".yaml", ".yml":
		return YAML
	case "toml", ".toml":
		return TOML
	default:
		return ""
	}
}

// DefaultPath returns the settings file path for format in Dir.
func DefaultPath(format Format) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+"."+string(format)), nil
}

// EnsureDir creates the parent directory of filePath.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// CandidatePaths lists settings files to try, per format, highest priority
// first: userPath, then the working directory, then Dir. A userPath with an
// unknown extension is read as JSON.
func CandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(p string) {
		switch ParseFormat(filepath.Ext(p)) {
		case YAML:
			yamlPaths = append(yamlPaths, p)
		case TOML:
			tomlPaths = append(tomlPaths, p)
		default:
			jsonPaths = append(jsonPaths, p)
		}
	}
	addAll := func(dir string) {
		base := filepath.Join(dir, AppName)
		add(base + ".json")
		add(base + ".yaml")
		add(base + ".yml")
		add(base + ".toml")
	}

	if userPath != "" {
		add(userPath)
	}
	if wd, err := os.Getwd(); err == nil {
		addAll(wd)
	}
	if dir, err := Dir(); err == nil {
		addAll(dir)
	}
	return
}
