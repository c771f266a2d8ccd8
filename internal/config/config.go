// Package config loads pokerpal settings from the config file, the
// environment and command-line flags
package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Store   StoreConfig   `mapstructure:"store"`
		Records RecordsConfig `mapstructure:"records"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		CLI     CLIConfig     `mapstructure:"-"`
	}

	// StoreConfig selects the database backend and file.
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
		// Path is the database file. Empty means the default location in
		// the data directory.
		Path string `mapstructure:"path"`
	}

	// RecordsConfig holds record entry settings
	RecordsConfig struct {
		PostSaveCmd   string `mapstructure:"post_save_cmd"`
		StrictNumbers bool   `mapstructure:"strict_numbers"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Currency string `mapstructure:"currency"`
		Language string `mapstructure:"language"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from flags.
	CLIConfig struct {
		ConfigPath string
		NoColor    bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.4.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order, so later options
// take precedence over earlier ones.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
