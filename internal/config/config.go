package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"

	"lf-go/internal/localfile"
)

// Config represents the main configuration for lf.
type Config struct {
	BaseDir   string           `toml:"base_dir"`
	LogDir    string           `toml:"log_dir"`
	LogLevel  string           `toml:"log_level,omitempty"` // debug, info, warn or error; defaults to info
	Locations []LocationConfig `toml:"locations"`
}

// LocationConfig is one named data location. Pattern is omitted when absent;
// a directory location without a pattern lists every entry.
type LocationConfig struct {
	Name     string            `toml:"name"`
	Location string            `toml:"location"`
	Pattern  localfile.Pattern `toml:"pattern,omitempty"`
}

// NewConfig creates a new Config rooted at baseDir with no locations.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir:  baseDir,
		LogDir:   filepath.Join(baseDir, "log"),
		LogLevel: "info",
	}
}

// Validate checks the config for structural problems. Filesystem checks
// happen when each location is built.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Locations))
	for i, loc := range c.Locations {
		if loc.Name == "" {
			return fmt.Errorf("locations[%d]: name is required", i)
		}
		if seen[loc.Name] {
			return fmt.Errorf("locations[%d]: duplicate name %q", i, loc.Name)
		}
		seen[loc.Name] = true
		if loc.Location == "" {
			return fmt.Errorf("location %q: location is required", loc.Name)
		}
	}
	return nil
}

// Level parses LogLevel. An empty LogLevel is info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile atomically replaces path with the encoded config.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer pending.Cleanup()

	m := &Manager{}
	if err := m.Write(pending, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing config at %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
