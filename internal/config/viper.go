package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "POKERPAL"

const (
	keyStoreDriver   = "store.driver"
	keyStorePath     = "store.path"
	keyStrictNumbers = "records.strict_numbers"
	keyPostSaveCmd   = "records.post_save_cmd"
	keyCurrency      = "display.currency"
	keyLanguage      = "display.language"
	keyLogLevel      = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a file with the defaults if it does not exist.
// Environment variables such as POKERPAL_DISPLAY_CURRENCY override values
// from the file.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v, c)

		c.CLI.ConfigPath = configPath

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// enabled after the defaults are written so that environment
		// values never end up in the file
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return v.Unmarshal(c)
	}
}

// WithDotEnv loads environment variables from the named files (.env when
// none is given). Missing files are ignored and variables that are already
// set are left alone.
func WithDotEnv(filenames ...string) Option {
	return func(_ *Config) error {
		if len(filenames) == 0 {
			filenames = []string{".env"}
		}

		for _, f := range filenames {
			err := godotenv.Load(f)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return errReadEnvFile.Fmt(f).Wrap(err)
			}
		}

		return nil
	}
}

// setDefaults configures Viper with defaults. Values already present in c,
// such as prompt answers, take the place of the built-in defaults.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault(keyStoreDriver, firstNonEmpty(c.Store.Driver, "bolt"))
	v.SetDefault(keyStorePath, c.Store.Path)
	v.SetDefault(keyStrictNumbers, c.Records.StrictNumbers)
	v.SetDefault(keyPostSaveCmd, c.Records.PostSaveCmd)
	v.SetDefault(keyCurrency, firstNonEmpty(c.Display.Currency, "USD"))
	v.SetDefault(keyLanguage, firstNonEmpty(c.Display.Language, "en"))
	v.SetDefault(keyLogLevel, firstNonEmpty(c.Log.Level, "info"))
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}
