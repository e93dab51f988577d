// Package config provides configuration management for javafind using Viper.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/javafind/internal/errors"
	"github.com/thoreinstein/javafind/internal/paths"
)

// Defaults.
const (
	DefaultVersion      = 1
	DefaultProbeTimeout = 10 * time.Second
	DefaultConcurrency  = 1
)

// EnvPrefix prefixes environment overrides, e.g. JAVAFIND_PROBE_TIMEOUT.
const EnvPrefix = "JAVAFIND"

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version"`

	// ProbeTimeout bounds each launcher's version query; zero disables it.
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`

	// Concurrency is the number of launchers probed at once.
	Concurrency int `mapstructure:"concurrency"`

	Search Search `mapstructure:"search"`
}

// Search tunes candidate discovery.
type Search struct {
	// ExtraDirs are searched like JVM directories: each child is an install.
	ExtraDirs []string `mapstructure:"extra_dirs"`

	// Platform selects another platform's search table. Empty means the host.
	Platform string `mapstructure:"platform"`
}

// Init resets Viper and installs the default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	// config.yaml or config.toml; viper tries each supported extension.
	viper.SetConfigName("config")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", DefaultVersion)
	viper.SetDefault("probe_timeout", DefaultProbeTimeout)
	viper.SetDefault("concurrency", DefaultConcurrency)
	viper.SetDefault("search.extra_dirs", []string{})
	viper.SetDefault("search.platform", "")
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:      DefaultVersion,
		ProbeTimeout: DefaultProbeTimeout,
		Concurrency:  DefaultConcurrency,
	}
}

// Load reads and validates the configuration.
// If path is provided, it reads from that specific file and a missing file
// is an error marked with errors.ErrNotFound. If path is empty, the default
// locations are searched and a missing file means defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults.
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return &cfg, errors.Mark(errors.Wrap(errors.Join(errs...), "validating config"), errors.ErrInvalidConfig)
	}
	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" when defaults are in use.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Settings returns the configuration as plain values for display, with
// durations rendered as strings.
func (c *Config) Settings() map[string]any {
	extra := c.Search.ExtraDirs
	if extra == nil {
		extra = []string{}
	}
	return map[string]any{
		"version":       c.Version,
		"probe_timeout": c.ProbeTimeout.String(),
		"concurrency":   c.Concurrency,
		"search": map[string]any{
			"extra_dirs": extra,
			"platform":   c.Search.Platform,
		},
	}
}
