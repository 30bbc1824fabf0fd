// Package config handles configuration for element-crawler.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yuzhenhan994520-spec/element-crawler/pkg/agent"
)

// Duration wraps time.Duration so timeouts can be written as "5s" in YAML.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the workspace configuration (crawler.yaml).
type Config struct {
	// Agent connection
	Host           string   `yaml:"host"`           // Agent host (default: 127.0.0.1 via port forward)
	Port           int      `yaml:"port"`           // Agent port (default: 16688)
	ConnectTimeout Duration `yaml:"connectTimeout"` // Dial timeout
	ReadTimeout    Duration `yaml:"readTimeout"`    // Per-command response timeout

	// Device settings
	Device string `yaml:"device"` // Target device serial

	// Logging
	LogFile string `yaml:"logFile"` // Log file path

	// Screen mirroring
	Scrcpy ScrcpyConfig `yaml:"scrcpy"`
}

// ScrcpyConfig configures the screen-mirroring subprocess.
type ScrcpyConfig struct {
	Path string   `yaml:"path"` // Binary path (default: scrcpy from PATH)
	Args []string `yaml:"args"` // Extra arguments
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:           "127.0.0.1",
		Port:           agent.DefaultPort,
		ConnectTimeout: Duration(5 * time.Second),
		ReadTimeout:    Duration(10 * time.Second),
	}
}

// ApplyDefaults fills zero-valued fields from the built-in configuration.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Host == "" {
		c.Host = def.Host
	}
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = def.ReadTimeout
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// LoadFromDir looks for crawler.yaml or crawler.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"crawler.yaml", "crawler.yml"} {
		configPath := filepath.Join(dir, name)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}

	// No config file found, return defaults
	return Default(), nil
}
