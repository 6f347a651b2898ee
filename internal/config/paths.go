package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName    = "elysium"
	configFile = "config.yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/elysium or $HOME/.config/elysium
//   - macOS: $HOME/.config/elysium (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\elysium
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return windowsAppDir()

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		return xdgDir("XDG_CONFIG_HOME", ".config")
	}
}

// GetDataDir returns the directory for files the dashboard writes while it
// runs: the log file and state exports.
//   - Linux: $XDG_DATA_HOME/elysium or $HOME/.local/share/elysium
//   - macOS: $HOME/.local/share/elysium
//   - Windows: %LOCALAPPDATA%\elysium\data
func GetDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base, err := windowsAppDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, "data"), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".local", "share", appName), nil

	default:
		return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	}
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

func xdgDir(envVar, homeRel string) (string, error) {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, homeRel, appName), nil
}

func windowsAppDir() (string, error) {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData != "" {
		return filepath.Join(localAppData, appName), nil
	}
	// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
	userProfile := os.Getenv("USERPROFILE")
	if userProfile == "" {
		return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
	}
	return filepath.Join(userProfile, "AppData", "Local", appName), nil
}
