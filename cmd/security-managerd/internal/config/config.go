package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/FuturFusion/security-manager/internal/logger"
	"github.com/FuturFusion/security-manager/internal/server/sys"
)

// EnvPrefix prefixes all environment variables overriding the config file.
const EnvPrefix = "SECURITY_MANAGER_"

type Config struct {
	Network Network `yaml:"network" envPrefix:"NETWORK_"`
	Log     Log     `yaml:"log" envPrefix:"LOG_"`
}

type Network struct {
	// Address the REST API listens on in addition to the unix socket, in the
	// form [host]:port. Empty disables the TCP listener.
	Address string `yaml:"address" env:"ADDRESS"`
}

type Log struct {
	// Level overrides the level selected by the command line flags.
	Level string `yaml:"level" env:"LEVEL"`
}

// LoadConfig reads the config file of the daemon and overlays the
// environment. Variables from the optional .env file in the same directory
// are used for variables not set in the process environment.
func LoadConfig(s *sys.OS) (*Config, error) {
	c := &Config{}

	contents, err := os.ReadFile(s.ConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err == nil {
		err = yaml.Unmarshal(contents, c)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse %q: %w", s.ConfigFile(), err)
		}
	}

	environment, err := environ(filepath.Join(filepath.Dir(s.ConfigFile()), ".env"))
	if err != nil {
		return nil, err
	}

	err = env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to read config from environment: %w", err)
	}

	return c, nil
}

func environ(dotEnvFile string) (map[string]string, error) {
	environment := env.ToMap(os.Environ())

	dotEnv, err := godotenv.Read(dotEnvFile)
	if errors.Is(err, os.ErrNotExist) {
		return environment, nil
	}

	if err != nil {
		return nil, fmt.Errorf("Failed to read %q: %w", dotEnvFile, err)
	}

	// The process environment has precedence.
	maps.Copy(dotEnv, environment)

	return dotEnv, nil
}

// SaveConfig writes c to the config file of the daemon.
func SaveConfig(s *sys.OS, c Config) error {
	contents, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return s.WriteFile(s.ConfigFile(), bytes.NewReader(contents), 0o644)
}

func Validate(c Config) error {
	if c.Network.Address != "" {
		host, port, err := net.SplitHostPort(c.Network.Address)
		if err != nil {
			return fmt.Errorf("Server address %q is invalid: %w", c.Network.Address, err)
		}

		if host != "" && net.ParseIP(host) == nil {
			return fmt.Errorf("Server IP address %q is invalid", host)
		}

		portNumber, err := strconv.Atoi(port)
		if err != nil || portNumber < 1 || portNumber > 0xffff {
			return fmt.Errorf("Server port %q is invalid", port)
		}
	}

	if c.Log.Level != "" {
		err := logger.ValidateLevel(c.Log.Level)
		if err != nil {
			return err
		}
	}

	return nil
}
