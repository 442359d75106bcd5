package app

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"lf-go/internal/config"
)

func TestGetDefaults(t *testing.T) {
	t.Run("uses env vars when set", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/custom/config.toml")
		t.Setenv(EnvHome, "/custom/lf")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if defaults["config_path"] != "/custom/config.toml" {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], "/custom/config.toml")
		}
		if defaults["base_dir"] != "/custom/lf" {
			t.Errorf("base_dir = %q, want %q", defaults["base_dir"], "/custom/lf")
		}
		if defaults["log_dir"] != filepath.Join("/custom/lf", "log") {
			t.Errorf("log_dir = %q, want %q", defaults["log_dir"], filepath.Join("/custom/lf", "log"))
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvConfigPath, "")
		t.Setenv(EnvHome, "")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if want := filepath.Join(home, ".config", "lf.toml"); defaults["config_path"] != want {
			t.Errorf("config_path = %q, want %q", defaults["config_path"], want)
		}
		if want := filepath.Join(home, ".local", "share", "lf"); defaults["base_dir"] != want {
			t.Errorf("base_dir = %q, want %q", defaults["base_dir"], want)
		}
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("leaves config alone when unset", func(t *testing.T) {
		t.Setenv(EnvLogDir, "")
		t.Setenv(EnvLogLevel, "")

		cfg := config.NewConfig("/srv/lf")
		if err := ApplyEnvOverrides(cfg); err != nil {
			t.Fatalf("ApplyEnvOverrides() error = %v", err)
		}
		if cfg.LogDir != filepath.Join("/srv/lf", "log") {
			t.Errorf("LogDir = %q", cfg.LogDir)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
		}
	})

	t.Run("overrides log settings", func(t *testing.T) {
		t.Setenv(EnvLogDir, "/tmp/lf-logs")
		t.Setenv(EnvLogLevel, "debug")

		cfg := config.NewConfig("/srv/lf")
		if err := ApplyEnvOverrides(cfg); err != nil {
			t.Fatalf("ApplyEnvOverrides() error = %v", err)
		}
		if cfg.LogDir != "/tmp/lf-logs" {
			t.Errorf("LogDir = %q, want /tmp/lf-logs", cfg.LogDir)
		}
		level, err := cfg.Level()
		if err != nil {
			t.Fatalf("Level() error = %v", err)
		}
		if level != slog.LevelDebug {
			t.Errorf("Level() = %v, want DEBUG", level)
		}
	})

	t.Run("rejects bad level", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "chatty")

		err := ApplyEnvOverrides(config.NewConfig("/srv/lf"))
		if err == nil || !strings.Contains(err.Error(), EnvLogLevel) {
			t.Fatalf("ApplyEnvOverrides() error = %v, want error naming %s", err, EnvLogLevel)
		}
	})
}
