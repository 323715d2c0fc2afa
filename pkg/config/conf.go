package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is used by `config init` when no path is given.
	DefaultFileName = "creditscore.yaml"

	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultLogLevel = "warn"

	fileMode = 0600
)

var (
	// ErrExists is returned by Save when the target file is already present.
	ErrExists = errors.New("config file already exists")

	logLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Config represents the optional app config file.
type Config struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the config used when no file is provided.
func Default() *Config {
	return &Config{
		Format:   FormatJSON,
		LogLevel: DefaultLogLevel,
	}
}

// Validate normalizes the config and checks its values.
func (c *Config) Validate() error {
	f, err := ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = f

	lvl, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	c.LogLevel = lvl
	return nil
}

// ParseLogLevel returns the normalized log level. Empty means the default.
func ParseLogLevel(v string) (string, error) {
	lvl := strings.ToLower(strings.TrimSpace(v))
	if lvl == "" {
		return DefaultLogLevel, nil
	}
	for _, l := range logLevels {
		if l == lvl {
			return lvl, nil
		}
	}
	return "", fmt.Errorf("unsupported log level: %q (expected one of %s)", v, strings.Join(logLevels, ", "))
}

// ParseFormat returns the canonical output format. Empty means json.
func ParseFormat(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q (expected %s or %s)", v, FormatJSON, FormatYAML)
	}
}

// Load reads the config file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return c, nil
}

// Save writes c to path. It does not overwrite an existing file.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
