package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ___  ___  _  _____ ___ ___ ___  _   _
| _ \/ _ \| |/ / __| _ \ _ \ _ \/_\ | |
|  _/ (_) | ' <| _||   /  _/  _/ _ \| |__
|_|  \___/|_|\_\___|_|_\_| |_|/_/ \_\____|`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Currency      string
	Driver        string
	StrictNumbers bool
}

// WithPromptConfig returns an Option that asks for the basic settings when
// no config file exists yet. The answers become the defaults written by
// WithViperConfig, so it must be applied first.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Currency: "USD",
		Driver:   "bolt",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure pokerpal for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'pokerpal edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency for amounts").
				Options(
					huh.NewOption("US dollar", "USD").Selected(true),
					huh.NewOption("Euro", "EUR"),
					huh.NewOption("Pound sterling", "GBP"),
					huh.NewOption("Chinese yuan", "CNY"),
					huh.NewOption("Japanese yen", "JPY"),
				).
				Value(&opts.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("BoltDB file", "bolt").Selected(true),
					huh.NewOption("SQLite file", "sqlite"),
				).
				Value(&opts.Driver),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reject amounts that are not valid numbers?").
				Description("Otherwise they are saved as zero").
				Value(&opts.StrictNumbers),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Display.Currency = opts.Currency
	c.Store.Driver = opts.Driver
	c.Records.StrictNumbers = opts.StrictNumbers

	return nil
}
