package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the configuration from CONFIG_PATH (or ./config.yaml),
// environment variables and env-default tags, in increasing precedence of
// defaults < file < env. A missing default file is not an error; a missing
// explicit one is.
func Load() (*Config, error) {
	if path := os.Getenv(pathEnv); path != "" {
		return LoadFrom(path)
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return LoadFrom(defaultPath)
	case errors.Is(err, fs.ErrNotExist):
		return load(func(cfg *Config) error { return cleanenv.ReadEnv(cfg) }, "env")
	default:
		return nil, fmt.Errorf("config: stat %s: %w", defaultPath, err)
	}
}

// LoadFrom reads the YAML file at path, applies env overrides and validates.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}
	return load(func(cfg *Config) error { return cleanenv.ReadConfig(path, cfg) }, path)
}

func load(read func(*Config) error, source string) (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
