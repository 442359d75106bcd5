package app

import (
	"fmt"
	"os"
	"path/filepath"

	"lf-go/internal/config"
)

// Environment variables read by lf.
const (
	EnvConfigPath = "LF_CONFIG_PATH" // config file (default ~/.config/lf.toml)
	EnvHome       = "LF_HOME"        // data directory (default ~/.local/share/lf)
	EnvLogDir     = "LF_LOG_DIR"     // overrides log_dir
	EnvLogLevel   = "LF_LOG_LEVEL"   // overrides log_level
)

// GetDefaults returns the config path, base directory and log directory,
// preferring LF_CONFIG_PATH and LF_HOME over the XDG-style home defaults.
func GetDefaults() (map[string]string, error) {
	configPath, err := fromEnvOrHome(EnvConfigPath, ".config", "lf.toml")
	if err != nil {
		return nil, err
	}

	baseDir, err := fromEnvOrHome(EnvHome, ".local", "share", "lf")
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// fromEnvOrHome returns the value of env, or the home directory joined with elem.
func fromEnvOrHome(env string, elem ...string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(append([]string{homeDir}, elem...)...), nil
}

// ApplyEnvOverrides replaces logging settings in cfg with LF_LOG_DIR and
// LF_LOG_LEVEL when they are set. The level is checked immediately so a bad
// value fails before any location is built.
func ApplyEnvOverrides(cfg *config.Config) error {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		cfg.LogDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
		if _, err := cfg.Level(); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return nil
}
