package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the optional sketch.yaml configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Media MediaConfig `yaml:"media"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// MediaConfig contains media playback settings.
type MediaConfig struct {
	// AutoplayTimeoutMs is the window, in milliseconds, the autoplay
	// watchdog waits for a play event before signaling failure.
	// Zero means the 500ms default.
	AutoplayTimeoutMs int `yaml:"autoplay_timeout_ms,omitempty"`
}

// DefaultAutoplayTimeout is the watchdog window used when no override is
// configured.
const DefaultAutoplayTimeout = 500 * time.Millisecond

// AutoplayTimeout returns the configured watchdog window, falling back to
// DefaultAutoplayTimeout.
func (c *Config) AutoplayTimeout() time.Duration {
	if c == nil || c.Media.AutoplayTimeoutMs <= 0 {
		return DefaultAutoplayTimeout
	}
	return time.Duration(c.Media.AutoplayTimeoutMs) * time.Millisecond
}

// LoadOptional reads sketch.yaml from dir if present. A missing file
// yields a zero Config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "sketch.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read sketch.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sketch.yaml: %w", err)
	}

	return &cfg, nil
}
