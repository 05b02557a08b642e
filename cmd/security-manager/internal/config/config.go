package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalRemote is the reserved name of the daemon reached through its unix
// socket.
const LocalRemote = "local"

type Remote struct {
	Addr string `yaml:"addr"`
}

// Validate checks the remote address is an absolute http or https URL.
func (r Remote) Validate() error {
	addrURL, err := url.Parse(r.Addr)
	if err != nil {
		return fmt.Errorf("Address %q is not valid: %w", r.Addr, err)
	}

	if addrURL.Scheme != "http" && addrURL.Scheme != "https" {
		return fmt.Errorf("Address %q is not valid: protocol scheme needs to be http or https", r.Addr)
	}

	if addrURL.Host == "" {
		return fmt.Errorf("Address %q is not valid: host is missing", r.Addr)
	}

	return nil
}

type Config struct {
	configDir string

	DefaultRemote string            `yaml:"default_remote"`
	Remotes       map[string]Remote `yaml:"remotes"`

	// Language used for translated labels, empty for the server default.
	Language string `yaml:"language"`
}

// NewConfig returns an empty configuration stored in configDir.
func NewConfig(configDir string) *Config {
	return &Config{
		configDir: configDir,
		Remotes:   map[string]Remote{},
	}
}

// LoadConfig reads config.yml from configDir. A missing file results in an
// empty configuration.
func LoadConfig(configDir string) (*Config, error) {
	cfg := NewConfig(configDir)

	contents, err := os.ReadFile(cfg.ConfigFile())
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %q: %w", cfg.ConfigFile(), err)
	}

	if cfg.Remotes == nil {
		cfg.Remotes = map[string]Remote{}
	}

	return cfg, nil
}

func (c *Config) ConfigDir() string {
	return c.configDir
}

func (c *Config) ConfigFile() string {
	return filepath.Join(c.configDir, "config.yml")
}

func (c *Config) SaveConfig() error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFile(), contents, 0o644)
}
