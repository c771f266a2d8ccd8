package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	DBPath  string
	Driver  string
	Strict  bool
	NoColor bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			DBPath:  ctx.String("db"),
			Driver:  ctx.String("driver"),
			Strict:  ctx.Bool("strict"),
			NoColor: ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Unset flags leave the
// file and environment values alone.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.DBPath != "" {
		c.Store.Path = opts.DBPath
	}

	if opts.Driver != "" {
		c.Store.Driver = opts.Driver
	}

	if opts.Strict {
		c.Records.StrictNumbers = true
	}

	c.CLI.NoColor = opts.NoColor

	return nil
}
