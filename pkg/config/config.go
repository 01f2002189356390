// Package config loads jabu settings.
//
// Values are resolved with the following precedence, highest first:
//
//  1. Explicit overrides (CLI flags)
//  2. JABU_* environment variables, including those set by a .env file
//  3. The TOML config file (see [Path])
//  4. Built-in defaults
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/matzehuels/jabu/pkg/errors"
	"github.com/matzehuels/jabu/pkg/repository/local"
	"github.com/matzehuels/jabu/pkg/repository/remote"
	"github.com/matzehuels/jabu/pkg/transport"
)

const (
	// EnvPrefix prefixes every environment variable jabu reads.
	EnvPrefix = "JABU"

	// DotEnvFile is read from the working directory before the environment.
	DotEnvFile = ".env"

	// FileName is the config file name inside the config directory.
	FileName = "config.toml"

	appDir = "jabu"
)

// Config keys, shared by the TOML file and the environment (JABU_<KEY>).
const (
	KeyRepository = "repository"
	KeyRemote     = "remote"
	KeyTimeout    = "timeout"
)

// Config holds resolved settings.
type Config struct {
	Repository string        `mapstructure:"repository"` // Local repository root
	Remote     string        `mapstructure:"remote"`     // Remote repository base URL
	Timeout    time.Duration `mapstructure:"timeout"`    // HTTP timeout per request
}

// Overrides carries explicitly set flag values. Zero fields are ignored.
type Overrides struct {
	Repository string
	Remote     string
	Timeout    time.Duration
}

// file is the on-disk shape written by [Write].
type file struct {
	Repository string `toml:"repository"`
	Remote     string `toml:"remote"`
	Timeout    string `toml:"timeout"`
}

// Path returns the config file location:
// $XDG_CONFIG_HOME/jabu/config.toml, or ~/.config/jabu/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "determine home directory")
	}
	return filepath.Join(home, ".config", appDir, FileName), nil
}

// Defaults returns the built-in settings.
func Defaults() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "determine home directory")
	}
	return &Config{
		Repository: filepath.Join(home, local.DefaultDir),
		Remote:     remote.DefaultURL,
		Timeout:    transport.DefaultTimeout,
	}, nil
}

// Load resolves the configuration from the default file, .env and the
// environment, then applies o.
func Load(o Overrides) (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return load(o, path, DotEnvFile)
}

// load accepts explicit paths so tests never touch the real home directory.
func load(o Overrides, path, dotEnv string) (*Config, error) {
	defaults, err := Defaults()
	if err != nil {
		return nil, err
	}

	// Existing environment variables win over .env entries.
	_ = godotenv.Load(dotEnv)

	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault(KeyRepository, defaults.Repository)
	v.SetDefault(KeyRemote, defaults.Remote)
	v.SetDefault(KeyTimeout, defaults.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
		}
	}

	if o.Repository != "" {
		v.Set(KeyRepository, o.Repository)
	}
	if o.Remote != "" {
		v.Set(KeyRemote, o.Remote)
	}
	if o.Timeout != 0 {
		v.Set(KeyTimeout, o.Timeout)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Repository == "" {
		return errors.New(errors.ErrCodeInvalidInput, "%s must not be empty", KeyRepository)
	}
	if _, err := errors.ValidateBaseURL(c.Remote); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s must be positive, got %s", KeyTimeout, c.Timeout)
	}
	return nil
}

// Write saves cfg as TOML at path, creating parent directories.
// An existing file is replaced.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", filepath.Dir(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "create %s", path)
	}
	defer f.Close()

	out := file{
		Repository: cfg.Repository,
		Remote:     cfg.Remote,
		Timeout:    cfg.Timeout.String(),
	}
	if err := toml.NewEncoder(f).Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	return f.Close()
}
