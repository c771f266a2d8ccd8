package config

import (
	"slices"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	validDrivers   = []string{"bolt", "sqlite", "memory"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(validDrivers, c.Store.Driver) {
		return errInvalidDriver.Fmt(c.Store.Driver, strings.Join(validDrivers, ", "))
	}

	if _, err := currency.ParseISO(c.Display.Currency); err != nil {
		return errInvalidCurrency.Fmt(c.Display.Currency)
	}

	if _, err := language.Parse(c.Display.Language); err != nil {
		return errInvalidLanguage.Fmt(c.Display.Language)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(validLogLevels, level) {
		return errInvalidLogLevel.Fmt(
			c.Log.Level,
			strings.Join(validLogLevels, ", "),
		)
	}

	c.Log.Level = level

	return nil
}
