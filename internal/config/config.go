// Package config loads playground settings from shorthand.yml.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the default configuration file name.
	FileName = "shorthand.yml"

	// DefaultHost is the default playground bind host.
	DefaultHost = "localhost"

	// DefaultPort is the default playground port.
	DefaultPort = 3000
)

// Config holds the playground server configuration.
type Config struct {
	// Host is the address to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the TCP port to listen on.
	Port int `yaml:"port,omitempty"`

	// File is the HTML document served and queried.
	File string `yaml:"file"`

	// Watch re-parses File on change and pushes a reload to connected
	// browsers.
	Watch bool `yaml:"watch,omitempty"`

	// WatchInterval is the poll interval for Watch.
	WatchInterval Duration `yaml:"watch_interval,omitempty"`

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool `yaml:"metrics,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Host:          DefaultHost,
		Port:          DefaultPort,
		Watch:         true,
		WatchInterval: Duration(500 * time.Millisecond),
		Metrics:       true,
	}
}

// Load reads the configuration at path, layering it over Default.
// A missing file is not an error; the defaults come back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.WatchInterval < 0 {
		return fmt.Errorf("watch_interval must not be negative")
	}
	return nil
}

// Duration wraps time.Duration so YAML values can use the "500ms" /
// "1s" notation.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
